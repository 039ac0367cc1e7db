package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"rankine/calculator"
	"rankine/model"
	"rankine/steam"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	cfg      calculator.Config
}

func NewServer(addr string, upgrader websocket.Upgrader, cfg calculator.Config) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		cfg:      cfg,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(conn, calculator.NewCalculator(steam.NewTable(), s.cfg))
	defer close(hub.done)
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", conn.RemoteAddr().String()).Info("客户端已连接")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("err: ", err)
			}
			log.WithField("remote", conn.RemoteAddr().String()).Info("客户端已断开")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() {
	log.WithField("addr", s.addr).Info("服务启动")
	err := http.ListenAndServe(s.addr, s.Handler())
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
