// Package server exposes the command protocol over a websocket listener.
// Transport concerns only: connection lifecycle, the per-connection status
// notification, frame reads, and serialized frame writes. Everything else
// is the dispatcher's job.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/marionet/marionet/pkg/logging"
	"github.com/marionet/marionet/pkg/protocol"
)

// Handler processes one inbound frame and returns the encoded reply. The
// second return is false when there is nothing to write back.
type Handler interface {
	Handle(raw []byte) ([]byte, bool)
}

// Server accepts websocket connections and feeds frames to the handler.
type Server struct {
	handler      Handler
	log          *logging.Logger
	upgrader     websocket.Upgrader
	browserReady bool

	writeTimeout time.Duration
}

// New creates a server. browserReady is reported to every client in the
// status notification sent right after the connection is established.
func New(handler Handler, log *logging.Logger, browserReady bool) *Server {
	return &Server{
		handler: handler,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The daemon is unauthenticated by design; origin checks would
			// only get in the way of local tooling.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		browserReady: browserReady,
		writeTimeout: 10 * time.Second,
	}
}

// ListenAndServe blocks serving websocket connections on the given port
// until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleWebSocket)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Infof("listening on :%d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// conn wraps one websocket connection. Replies for concurrently handled
// frames are serialized through the write mutex.
type conn struct {
	id      string
	ws      *websocket.Conn
	writeMu sync.Mutex
	timeout time.Duration
}

func (c *conn) writeText(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(c.timeout))
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("websocket upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	c := &conn{
		id:      uuid.New().String(),
		ws:      ws,
		timeout: s.writeTimeout,
	}
	s.log.Infof("connection %s established from %s", c.id, r.RemoteAddr)

	if err := s.sendStatus(c); err != nil {
		s.log.Errorf("connection %s status notification: %v", c.id, err)
		ws.Close()
		return
	}

	s.readLoop(c)
}

func (s *Server) sendStatus(c *conn) error {
	status := protocol.StatusNotification{Status: protocol.StatusReady}
	if !s.browserReady {
		status.Status = protocol.StatusBrowserUnavailable
	}

	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return c.writeText(data)
}

// readLoop reads frames until the connection drops. Each frame is handled
// on its own goroutine: commands against the same page may interleave at
// engine suspension points, which matches the protocol's documented
// per-message task model.
func (s *Server) readLoop(c *conn) {
	defer func() {
		c.ws.Close()
		s.log.Infof("connection %s closed", c.id)
	}()

	for {
		msgType, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warnf("connection %s read error: %v", c.id, err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		go func(frame []byte) {
			reply, ok := s.handler.Handle(frame)
			if !ok {
				return
			}
			if err := c.writeText(reply); err != nil {
				s.log.Warnf("connection %s write error: %v", c.id, err)
			}
		}(raw)
	}
}
