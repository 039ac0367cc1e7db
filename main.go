package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"rankine/calculator"
	"rankine/server"
	"rankine/steam"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

var (
	configPath = flag.String("config", "conf/config.ini", "配置文件路径")
	once       = flag.Bool("once", false, "按配置计算一次并输出结果")
)

func main() {
	flag.Parse()
	cfg := calculator.LoadConfig(*configPath)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("日志级别错误，使用 info: ", err)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if *once {
		runOnce(cfg)
		return
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.Addr, upgrader, cfg)
	s.Serve()
}

func runOnce(cfg calculator.Config) {
	c := calculator.NewCalculator(steam.NewTable(), cfg)
	if _, err := c.Run(); err != nil {
		log.Fatal(err)
	}
	report, err := c.BuildReport()
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range report.Points {
		fields := log.Fields{
			"P": p.Pressure,
			"T": p.Temperature,
			"H": p.Enthalpy,
			"S": p.Entropy,
		}
		if p.Quality != nil {
			fields["X"] = *p.Quality
		}
		log.WithFields(fields).Infof("%d %s", p.Index, p.Name)
	}
	s := report.Summary
	log.WithFields(log.Fields{
		"run":               report.Run,
		"HPWork":            s.HPWork,
		"LPWork":            s.LPWork,
		"PumpWork":          s.PumpWork,
		"HeatInput":         s.HeatInput,
		"CondenserDuty":     s.CondenserDuty,
		"ExtractionPercent": s.ExtractionFraction,
		"EfficiencyPercent": s.Efficiency,
		"HeatRate":          s.HeatRate,
	}).Info("循环性能")
}
