package simserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/protocol"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 1024
)

// Options configures a simulator Server.
type Options struct {
	// ListenAddr is the host:port to bind.
	ListenAddr string
	// Prompt is the header prompt for every session.
	Prompt string
	// Subprompt, when non-empty, makes every session start in the
	// failed-attempt warning state. Useful for testing retry screens.
	Subprompt string
	// Announce enables mDNS advertisement while the server runs.
	Announce bool
}

// Server hosts PIN-entry sessions over WebSocket, one session per
// connection. It exists so UI harnesses can exercise the engine without
// a terminal.
type Server struct {
	opts     Options
	upgrader websocket.Upgrader
	nextID   atomic.Uint64
}

// New creates a simulator server.
func New(opts Options) *Server {
	return &Server{
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The simulator binds to loopback by default and carries
			// test PINs only.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/session", s.handleSession)

	listener, err := net.Listen("tcp", s.opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.ListenAddr, err)
	}

	if s.opts.Announce {
		stop, err := Announce(listener.Addr())
		if err != nil {
			// Advertisement is a convenience; the server still works
			// for clients that know the address.
			logging.Warn("mDNS announce failed", zap.Error(err))
		} else {
			defer stop()
		}
	}

	srv := &http.Server{Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	logging.Info("Simulator listening",
		zap.String("addr", listener.Addr().String()),
		zap.Bool("announce", s.opts.Announce),
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("simulator server failed: %w", err)
	}
}

// handleSession upgrades the connection and runs one PIN-entry session
// until a terminal outcome or disconnect.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := conn.RemoteAddr().String()
	logging.LogConnection(remoteAddr, "session_opened")
	defer func() {
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "session_closed")
	}()

	conn.SetReadLimit(maxMessageSize)

	sess := newSession(
		fmt.Sprintf("sim-%d", s.nextID.Add(1)),
		s.opts.Prompt,
		s.opts.Subprompt,
	)

	// Push the initial screen so the client sees the warning/prompt
	// state before sending anything.
	initial, err := sess.InitialFrame()
	if err != nil {
		logging.Error("Failed to encode initial frame", zap.Error(err))
		return
	}
	if err := s.write(conn, initial); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warn("Connection dropped",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		msg, err := protocol.DecodeClientMessage(data)
		if err != nil {
			// Malformed input is the harness's bug; report and keep the
			// session alive.
			logging.Warn("Rejected client message",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			continue
		}

		replies, done, err := sess.Handle(msg)
		if err != nil {
			logging.Warn("Rejected client message",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			continue
		}
		for _, reply := range replies {
			if err := s.write(conn, reply); err != nil {
				return
			}
		}
		if done {
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			return
		}
	}
}

func (s *Server) write(conn *websocket.Conn, data []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logging.Warn("Write failed",
			zap.String("remote_addr", conn.RemoteAddr().String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
