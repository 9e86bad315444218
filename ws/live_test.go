package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// stubBackend upgrades incoming connections and hands each one to accept.
// Accept callbacks must return once the connection dies, or server shutdown
// would block on them.
type stubBackend struct {
	srv      *httptest.Server
	upgrades int32
}

func newStubBackend(t *testing.T, accept func(conn *websocket.Conn)) *stubBackend {
	t.Helper()
	b := &stubBackend{}
	up := websocket.Upgrader{}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		atomic.AddInt32(&b.upgrades, 1)
		accept(conn)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

// drain reads until the peer goes away.
func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func newTestSync(t *testing.T, b *stubBackend) *LiveOrderSync {
	t.Helper()
	s := NewLiveOrderSync(b.srv.URL, zap.NewNop())
	s.initialDelay = 5 * time.Millisecond
	s.maxDelay = 10 * time.Millisecond
	t.Cleanup(s.Shutdown)
	return s
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestConnectIsIdempotent(t *testing.T) {
	send := make(chan frame, 1)
	b := newStubBackend(t, func(conn *websocket.Conn) {
		_ = conn.WriteJSON(<-send)
		drain(conn)
	})
	s := newTestSync(t, b)

	var hits int32
	s.On(EventOrderUpdated, func(json.RawMessage) { atomic.AddInt32(&hits, 1) })

	s.Connect()
	s.Connect()
	s.Connect()
	waitFor(t, s.Connected, "connection")

	if n := atomic.LoadInt32(&b.upgrades); n != 1 {
		t.Fatalf("upgrades = %d, want one connection for repeated Connect", n)
	}

	send <- frame{Event: EventOrderUpdated, Data: json.RawMessage(`{"orderId":"ORD-1"}`)}
	waitFor(t, func() bool { return atomic.LoadInt32(&hits) == 1 }, "event delivery")

	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("handler ran %d times for one frame", n)
	}
}

func TestDispatchOrderAndPanicIsolation(t *testing.T) {
	b := newStubBackend(t, func(conn *websocket.Conn) {
		_ = conn.WriteJSON(frame{Event: EventOrderUpdated, Data: json.RawMessage(`{}`)})
		drain(conn)
	})
	s := newTestSync(t, b)

	var mu sync.Mutex
	var order []string
	record := func(name string) {
		mu.Lock()
		order = append(order, name)
		mu.Unlock()
	}
	s.On(EventOrderUpdated, func(json.RawMessage) { record("first") })
	s.On(EventOrderUpdated, func(json.RawMessage) {
		record("panics")
		panic("boom")
	})
	s.On(EventOrderUpdated, func(json.RawMessage) { record("last") })

	s.Connect()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 3
	}, "all handlers")

	mu.Lock()
	defer mu.Unlock()
	if order[0] != "first" || order[1] != "panics" || order[2] != "last" {
		t.Fatalf("handlers ran out of order: %v", order)
	}
}

func TestOffStopsDelivery(t *testing.T) {
	send := make(chan struct{})
	b := newStubBackend(t, func(conn *websocket.Conn) {
		<-send
		_ = conn.WriteJSON(frame{Event: EventOrderUpdated, Data: json.RawMessage(`{}`)})
		drain(conn)
	})
	s := newTestSync(t, b)

	var removed, kept int32
	sub := s.On(EventOrderUpdated, func(json.RawMessage) { atomic.AddInt32(&removed, 1) })
	s.On(EventOrderUpdated, func(json.RawMessage) { atomic.AddInt32(&kept, 1) })
	s.Off(sub)

	s.Connect()
	waitFor(t, s.Connected, "connection")
	close(send)

	waitFor(t, func() bool { return atomic.LoadInt32(&kept) == 1 }, "kept handler")
	if atomic.LoadInt32(&removed) != 0 {
		t.Fatal("deregistered handler still ran")
	}
}

func TestJoinTable(t *testing.T) {
	got := make(chan frame, 1)
	b := newStubBackend(t, func(conn *websocket.Conn) {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			return
		}
		got <- f
		drain(conn)
	})
	s := newTestSync(t, b)

	// disconnected: silently skipped, never queued
	s.JoinTable("12")

	s.Connect()
	waitFor(t, s.Connected, "connection")
	s.JoinTable("12")

	select {
	case f := <-got:
		if f.Event != "join_table" {
			t.Fatalf("event = %q", f.Event)
		}
		var data map[string]string
		if err := json.Unmarshal(f.Data, &data); err != nil || data["tableNumber"] != "12" {
			t.Fatalf("data = %s", f.Data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("join_table never arrived")
	}
}

func TestConnectAndDisconnectEvents(t *testing.T) {
	drop := make(chan struct{}, 1)
	stop := make(chan struct{})
	b := newStubBackend(t, func(conn *websocket.Conn) {
		go drain(conn)
		select {
		case <-drop:
		case <-stop:
		}
		_ = conn.Close()
	})
	t.Cleanup(func() { close(stop) })
	s := newTestSync(t, b)

	var connects, disconnects int32
	s.On(EventConnect, func(json.RawMessage) { atomic.AddInt32(&connects, 1) })
	s.On(EventDisconnect, func(json.RawMessage) { atomic.AddInt32(&disconnects, 1) })

	s.Connect()
	waitFor(t, func() bool { return atomic.LoadInt32(&connects) >= 1 }, "connect event")

	drop <- struct{}{}
	waitFor(t, func() bool { return atomic.LoadInt32(&disconnects) >= 1 }, "disconnect event")
	waitFor(t, func() bool { return atomic.LoadInt32(&connects) >= 2 }, "reconnect")
}

func TestReconnectWaitsAfterDrop(t *testing.T) {
	drop := make(chan struct{}, 1)
	stop := make(chan struct{})
	b := newStubBackend(t, func(conn *websocket.Conn) {
		go drain(conn)
		select {
		case <-drop:
		case <-stop:
		}
		_ = conn.Close()
	})
	t.Cleanup(func() { close(stop) })
	s := newTestSync(t, b)
	s.initialDelay = 60 * time.Millisecond

	var mu sync.Mutex
	var droppedAt, redialedAt time.Time
	var connects int
	s.On(EventConnect, func(json.RawMessage) {
		mu.Lock()
		connects++
		if connects == 2 {
			redialedAt = time.Now()
		}
		mu.Unlock()
	})
	s.On(EventDisconnect, func(json.RawMessage) {
		mu.Lock()
		if droppedAt.IsZero() {
			droppedAt = time.Now()
		}
		mu.Unlock()
	})

	s.Connect()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return connects == 1
	}, "connection")

	drop <- struct{}{}
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return connects >= 2
	}, "reconnect")

	mu.Lock()
	gap := redialedAt.Sub(droppedAt)
	mu.Unlock()
	if gap < s.initialDelay {
		t.Fatalf("re-dialed %v after the drop, want at least %v", gap, s.initialDelay)
	}
}

func TestReconnectGivesUpAfterMaxAttempts(t *testing.T) {
	b := newStubBackend(t, func(conn *websocket.Conn) { _ = conn.Close() })
	s := newTestSync(t, b)
	s.maxAttempts = 2
	b.srv.Close() // nothing left to dial

	s.Connect()
	time.Sleep(200 * time.Millisecond)
	if s.Connected() {
		t.Fatal("must stay disconnected once attempts run out")
	}
}

func TestBackoffSequence(t *testing.T) {
	s := NewLiveOrderSync("ws://example", zap.NewNop())
	want := []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second,
	}
	for i, w := range want {
		if d := s.backoff(i + 1); d != w {
			t.Fatalf("backoff(%d) = %v, want %v", i+1, d, w)
		}
	}
}

func TestWSURLRewrite(t *testing.T) {
	cases := map[string]string{
		"http://host:3000/ws/orders": "ws://host:3000/ws/orders",
		"https://host/ws/orders":     "wss://host/ws/orders",
		"ws://host:3000/ws/orders":   "ws://host:3000/ws/orders",
		"wss://already.example/ws":   "wss://already.example/ws",
	}
	for in, want := range cases {
		if got := wsURL(in); got != want {
			t.Fatalf("wsURL(%q) = %q, want %q", in, got, want)
		}
	}
}
