package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
	"rankine/model"
	"rankine/plant"
)

type Config struct {
	Addr     string
	LogLevel string

	Cycle plant.CycleParameters

	DiagramSamples        int
	DiagramMaxTemperature float64
}

// LoadConfig 读取 ini 配置，文件不存在或无法解析时使用默认值
func LoadConfig(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithField("path", path).Warn("配置文件读取错误，使用默认配置: ", err)
		file = ini.Empty()
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	cycle := file.Section("cycle")
	diagram := file.Section("diagram")
	return Config{
		Addr:     file.Section("server").Key("Addr").MustString(":9000"),
		LogLevel: file.Section("log").Key("Level").MustString("info"),
		Cycle: plant.CycleParameters{
			SteamGeneratorPressure: cycle.Key("SteamGeneratorPressure").MustFloat64(plant.DefaultSteamGeneratorPressure),
			SeparatorPressure:      cycle.Key("SeparatorPressure").MustFloat64(plant.DefaultSeparatorPressure),
			CondenserPressure:      cycle.Key("CondenserPressure").MustFloat64(plant.DefaultCondenserPressure),
			LPInletTemperature:     cycle.Key("LPInletTemperature").MustFloat64(plant.DefaultLPInletTemperature),
			FeedwaterMargin:        cycle.Key("FeedwaterMargin").MustFloat64(plant.DefaultFeedwaterMargin),
			HPEfficiency:           cycle.Key("HPEfficiency").MustFloat64(plant.DefaultHPEfficiency),
			LPEfficiency:           cycle.Key("LPEfficiency").MustFloat64(plant.DefaultLPEfficiency),
			PumpEfficiency:         cycle.Key("PumpEfficiency").MustFloat64(plant.DefaultPumpEfficiency),
		},
		DiagramSamples:        diagram.Key("Samples").MustInt(model.DiagramSamples),
		DiagramMaxTemperature: diagram.Key("MaxTemperature").MustFloat64(model.DiagramMaxTemperature),
	}
}
