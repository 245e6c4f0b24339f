// Package server exposes the console headlessly over a websocket. Each
// connection gets its own session: the client sends one command line per
// text frame, the server replies with one JSON frame carrying the ordered
// output lines and any cue signals that command produced.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"observernode/pkg/game/console"
	"observernode/pkg/game/router"
	"observernode/pkg/game/world"
)

const writeWait = 10 * time.Second

// OutputFrame is one reply to the client: the lines produced by a single
// command (or by the session prologue), in delivery order.
type OutputFrame struct {
	Lines []string `json:"lines"`
	Cues  []string `json:"cues,omitempty"`
}

// CommandFrame is one command submitted by the client
type CommandFrame struct {
	Line string `json:"line"`
}

// Server upgrades connections and runs one session per connection
type Server struct {
	upgrader websocket.Upgrader
}

// New creates a websocket session server
func New() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler returns the http handler for the session endpoint
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.serveSession)
}

// ListenAndServe mounts the session endpoint at /session and serves forever
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/session", s.Handler())
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) serveSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Per-session state; commands are serialized by the single read loop,
	// so the reply for one command is always written before the next is read.
	rec := console.NewRecorder()
	rt := router.New(world.NewState(), rec, rec)

	rt.Boot()
	if err := writeFrame(conn, rec); err != nil {
		log.Printf("session prologue write failed: %v", err)
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd CommandFrame
		if err := json.Unmarshal(payload, &cmd); err != nil {
			log.Printf("discarding malformed frame: %v", err)
			continue
		}

		rec.Reset()
		rt.Handle(cmd.Line)

		if err := writeFrame(conn, rec); err != nil {
			log.Printf("session write failed: %v", err)
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, rec *console.Recorder) error {
	frame := OutputFrame{Lines: rec.Lines(), Cues: rec.Cues()}
	if frame.Lines == nil {
		frame.Lines = []string{}
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
