package ws

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Events synthesized by the client itself on transport state changes.
const (
	EventConnect    = "connect"
	EventDisconnect = "disconnect"
)

// EventOrderUpdated carries partial order fields pushed when an admin
// changes an order.
const EventOrderUpdated = "admin_order_updated"

const (
	reconnectInitialDelay = time.Second
	reconnectMaxDelay     = 5 * time.Second
	reconnectMaxAttempts  = 5
)

// Handler receives a named event's raw payload.
type Handler func(data json.RawMessage)

// Subscription identifies one registered handler for Off.
type Subscription struct {
	event string
	id    uint64
}

type subscriber struct {
	id uint64
	fn Handler
}

// frame is the wire format: one JSON object per websocket message.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type emitFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// LiveOrderSync holds the process's one live connection to the backend's
// event channel. It is shared by every screen: Connect is idempotent, the
// connection outlives any screen, and only Shutdown ends it. Disconnects
// trigger a bounded reconnect (1s growing to a 5s cap, 5 attempts); when
// the attempts run out the client stays disconnected and screens rely on
// their periodic re-fetch instead.
type LiveOrderSync struct {
	url string
	log *zap.Logger

	// reconnect policy, defaulted from the package consts
	initialDelay time.Duration
	maxDelay     time.Duration
	maxAttempts  int

	dialer *websocket.Dialer
	done   chan struct{}

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	started   bool
	closed    bool
	nextID    uint64
	handlers  map[string][]subscriber
}

func NewLiveOrderSync(rawURL string, log *zap.Logger) *LiveOrderSync {
	return &LiveOrderSync{
		url:          wsURL(rawURL),
		log:          log,
		initialDelay: reconnectInitialDelay,
		maxDelay:     reconnectMaxDelay,
		maxAttempts:  reconnectMaxAttempts,
		dialer:       websocket.DefaultDialer,
		done:         make(chan struct{}),
		handlers:     make(map[string][]subscriber),
	}
}

// wsURL accepts http(s) endpoints as configured for the browser client and
// rewrites them to the websocket scheme.
func wsURL(raw string) string {
	switch {
	case strings.HasPrefix(raw, "https://"):
		return "wss://" + strings.TrimPrefix(raw, "https://")
	case strings.HasPrefix(raw, "http://"):
		return "ws://" + strings.TrimPrefix(raw, "http://")
	}
	return raw
}

// Connect starts the connection manager. Calling it again, from any
// screen, is a no-op: there is never more than one underlying connection.
func (s *LiveOrderSync) Connect() {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go s.run()
}

func (s *LiveOrderSync) run() {
	attempt := 0
	for {
		select {
		case <-s.done:
			return
		default:
		}

		conn, _, err := s.dialer.Dial(s.url, nil)
		if err != nil {
			attempt++
			if attempt > s.maxAttempts {
				s.log.Warn("live channel gone, giving up",
					zap.Int("attempts", s.maxAttempts))
				return
			}
			delay := s.backoff(attempt)
			s.log.Warn("live channel dial failed",
				zap.Int("attempt", attempt),
				zap.Duration("retry_in", delay),
				zap.Error(err))
			select {
			case <-time.After(delay):
			case <-s.done:
				return
			}
			continue
		}

		attempt = 0
		if !s.attach(conn) {
			_ = conn.Close()
			return
		}
		s.dispatch(EventConnect, nil)

		s.readLoop(conn)

		s.detach(conn)
		s.dispatch(EventDisconnect, nil)

		// a dropped connection waits the initial delay before re-dialing
		select {
		case <-time.After(s.initialDelay):
		case <-s.done:
			return
		}
	}
}

// backoff doubles from the initial delay up to the cap: 1s, 2s, 4s, 5s, 5s.
func (s *LiveOrderSync) backoff(attempt int) time.Duration {
	d := s.initialDelay << (attempt - 1)
	if d > s.maxDelay || d <= 0 {
		d = s.maxDelay
	}
	return d
}

func (s *LiveOrderSync) attach(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conn = conn
	s.connected = true
	return true
}

func (s *LiveOrderSync) detach(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == conn {
		s.conn = nil
		s.connected = false
	}
	_ = conn.Close()
}

func (s *LiveOrderSync) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
			default:
				s.log.Warn("live channel read error", zap.Error(err))
			}
			return
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil || f.Event == "" {
			s.log.Warn("live channel: bad frame", zap.Error(err))
			continue
		}
		s.dispatch(f.Event, f.Data)
	}
}

// On registers a handler for a named event. Handlers run in registration
// order when the event arrives.
func (s *LiveOrderSync) On(event string, fn Handler) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.handlers[event] = append(s.handlers[event], subscriber{id: s.nextID, fn: fn})
	return Subscription{event: event, id: s.nextID}
}

// Off deregisters a handler previously registered with On.
func (s *LiveOrderSync) Off(sub Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := s.handlers[sub.event]
	for i := range subs {
		if subs[i].id == sub.id {
			s.handlers[sub.event] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// dispatch runs every handler registered for the event, in order. A
// panicking handler is contained so the rest still run.
func (s *LiveOrderSync) dispatch(event string, data json.RawMessage) {
	s.mu.Lock()
	subs := append([]subscriber(nil), s.handlers[event]...)
	s.mu.Unlock()

	for _, sub := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("live channel handler panic",
						zap.String("event", event), zap.Any("panic", r))
				}
			}()
			sub.fn(data)
		}()
	}
}

// JoinTable asks the backend to scope push events to one table. When the
// channel is down this is silently skipped, not queued; after a reconnect
// the caller re-issues it from its connect handler.
func (s *LiveOrderSync) JoinTable(tableNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected || s.conn == nil {
		return
	}
	err := s.conn.WriteJSON(emitFrame{
		Event: "join_table",
		Data:  map[string]string{"tableNumber": tableNumber},
	})
	if err != nil {
		s.log.Warn("join_table send failed",
			zap.String("table", tableNumber), zap.Error(err))
	}
}

// Connected is the connectivity signal screens observe.
func (s *LiveOrderSync) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Shutdown ends the process-wide connection for good.
func (s *LiveOrderSync) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	conn := s.conn
	s.conn = nil
	s.connected = false
	s.mu.Unlock()

	if conn != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}
}
