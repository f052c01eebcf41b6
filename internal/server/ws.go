package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	"github.com/matzehuels/dsaviz/pkg/httputil"
	"github.com/matzehuels/dsaviz/pkg/observability"
	"github.com/matzehuels/dsaviz/pkg/pipeline"
	"github.com/matzehuels/dsaviz/pkg/playback"
)

// =============================================================================
// Constants
// =============================================================================

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 64 << 10

	// sendBuffer is how many messages may queue for a slow client before
	// the session is dropped.
	sendBuffer = 64
)

// Client actions.
const (
	ActionExecute = "execute"
	ActionForward = "forward"
	ActionBack    = "back"
	ActionToggle  = "toggle"
	ActionSpeed   = "speed"
	ActionReset   = "reset"
	ActionSeek    = "seek"
)

// Server message types.
const (
	MessageSession = "session"
	MessageLoaded  = "loaded"
	MessageFrame   = "frame"
	MessageError   = "error"
)

// =============================================================================
// Messages
// =============================================================================

// ClientMessage is an action sent by a playback client.
type ClientMessage struct {
	Action    string          `json:"action" validate:"required,oneof=execute forward back toggle speed reset seek"`
	Algorithm string          `json:"algorithm,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	SpeedMS   int64           `json:"speedMs,omitempty"`
	Index     int             `json:"index,omitempty"`
}

// ServerMessage is pushed to playback clients.
type ServerMessage struct {
	Type    string                `json:"type"`
	Session string                `json:"session,omitempty"`
	Loaded  *Loaded               `json:"loaded,omitempty"`
	State   *playback.State       `json:"state,omitempty"`
	Error   *httputil.ErrorDetail `json:"error,omitempty"`
}

// Loaded describes a freshly executed sequence. It precedes the frame
// for step 0.
type Loaded struct {
	Algorithm string       `json:"algorithm"`
	Title     string       `json:"title"`
	Display   algo.Display `json:"display"`
	Input     step.Input   `json:"input"`
	Length    int          `json:"length"`
	Cached    bool         `json:"cached"`
}

// =============================================================================
// Handler
// =============================================================================

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	info := s.sessions.Open()
	defer s.sessions.Close(info.ID)

	sess := newSession(info.ID, conn, s.runner, s.logger)
	sess.onState = func(st playback.State) { s.sessions.Update(info.ID, st) }
	hooks := observability.Server()
	hooks.OnSessionOpen(sess.id)
	start := time.Now()
	s.logger.Debug("session opened", "session", sess.id)

	sess.run(r.Context())

	hooks.OnSessionClose(sess.id, time.Since(start))
	s.logger.Debug("session closed", "session", sess.id, "duration", time.Since(start).Round(time.Millisecond))
}

// =============================================================================
// Session
// =============================================================================

// playSession owns one connection and its controller.
type playSession struct {
	id     string
	conn   *websocket.Conn
	runner *pipeline.Runner
	logger *log.Logger
	ctl    *playback.Controller

	out     chan ServerMessage
	cancel  context.CancelFunc
	onState func(playback.State)
}

func newSession(id string, conn *websocket.Conn, runner *pipeline.Runner, logger *log.Logger) *playSession {
	return &playSession{
		id:     id,
		conn:   conn,
		runner: runner,
		logger: logger.With("session", id),
		ctl:    playback.New(nil),
		out:    make(chan ServerMessage, sendBuffer),
	}
}

// run blocks until the client disconnects or ctx is done.
func (s *playSession) run(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	defer s.cancel()
	defer s.ctl.Close()

	s.ctl.OnChange(func(st playback.State) {
		if s.onState != nil {
			s.onState(st)
		}
		s.send(ServerMessage{Type: MessageFrame, State: &st})
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writeLoop(ctx)
	}()

	s.send(ServerMessage{Type: MessageSession, Session: s.id})
	s.readLoop(ctx)
	s.cancel()
	wg.Wait()
}

// send queues m without blocking. A client that cannot keep up is
// disconnected.
func (s *playSession) send(m ServerMessage) {
	select {
	case s.out <- m:
	default:
		s.logger.Warn("client too slow, closing session")
		s.cancel()
	}
}

func (s *playSession) sendError(err error) {
	code := dserrors.GetCode(err)
	if code == "" {
		code = dserrors.ErrCodeInternal
	}
	s.send(ServerMessage{Type: MessageError, Error: &httputil.ErrorDetail{
		Code:    code,
		Message: dserrors.UserMessage(err),
	}})
}

func (s *playSession) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case m := <-s.out:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(m); err != nil {
				s.logger.Debug("write failed", "err", err)
				s.cancel()
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.cancel()
				return
			}
		}
	}
}

func (s *playSession) readLoop(ctx context.Context) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("read failed", "err", err)
			}
			return
		}
		var m ClientMessage
		if err := json.Unmarshal(data, &m); err != nil {
			s.sendError(dserrors.Wrap(dserrors.ErrCodeInvalidInput, err, "malformed message"))
			continue
		}
		if err := s.handle(ctx, m); err != nil {
			s.sendError(err)
		}
	}
}

// handle applies one client action to the controller.
func (s *playSession) handle(ctx context.Context, m ClientMessage) error {
	if err := httputil.Validate(&m); err != nil {
		return err
	}
	if m.Action == ActionExecute {
		return s.execute(ctx, m)
	}
	if s.ctl.Snapshot().Length == 0 {
		return dserrors.New(dserrors.ErrCodeInvalidInput, "no sequence loaded: send an execute action first")
	}

	switch m.Action {
	case ActionForward:
		s.ctl.StepForward()
	case ActionBack:
		s.ctl.StepBack()
	case ActionToggle:
		s.ctl.TogglePlay()
	case ActionReset:
		s.ctl.Reset()
	case ActionSeek:
		s.ctl.Seek(m.Index)
	case ActionSpeed:
		d := time.Duration(m.SpeedMS) * time.Millisecond
		if err := dserrors.ValidateSpeed(d); err != nil {
			return err
		}
		s.ctl.SetSpeed(d)
	}
	return nil
}

func (s *playSession) execute(ctx context.Context, m ClientMessage) error {
	a, in, err := s.runner.Resolve(pipeline.Request{Algorithm: m.Algorithm, Input: m.Input})
	if err != nil {
		return err
	}
	res, err := s.runner.Generate(ctx, a, in)
	if err != nil {
		return err
	}
	s.send(ServerMessage{Type: MessageLoaded, Loaded: &Loaded{
		Algorithm: a.Name,
		Title:     a.Title,
		Display:   a.Display,
		Input:     res.Sequence.Input(),
		Length:    res.Sequence.Len(),
		Cached:    res.Cached,
	}})
	s.ctl.Load(res.Sequence)
	return nil
}
