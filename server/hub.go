package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"rankine/calculator"
	"rankine/model"
)

// Hub 一个 websocket 连接对应一个 Hub 和一个 calculator
type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	// 连接断开
	done chan struct{}
}

func NewHub(conn *websocket.Conn, c calculator.Calculator) *Hub {
	return &Hub{
		c:     c,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("type", reply.Type).Error("err: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.dispatch(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.TypeEnv:
		if err := h.c.SetEnv(msg.Content); err != nil {
			return errorMsg(err)
		}
		return model.Msg{
			Type:    model.TypeEnvSet,
			Content: "env is set",
		}
	case model.TypeStart:
		if _, err := h.c.Run(); err != nil {
			return errorMsg(err)
		}
		report, err := h.c.BuildReport()
		if err != nil {
			return errorMsg(err)
		}
		return encode(model.TypeReport, report)
	case model.TypeDiagram:
		diagram, err := h.c.BuildDiagram()
		if err != nil {
			return errorMsg(err)
		}
		return encode(model.TypeDiagram, diagram)
	case model.TypeStop:
		return model.Msg{
			Type:    model.TypeStopped,
			Content: "stopped",
		}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return model.Msg{Type: model.TypeError, Content: "no such type: " + msg.Type}
	}
}

func encode(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errorMsg(err error) model.Msg {
	log.Error("err: ", err)
	return model.Msg{Type: model.TypeError, Content: err.Error()}
}
