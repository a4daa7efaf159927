package net

import (
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SignaturePad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) (*PadServer, string, chan Message) {
	t.Helper()
	got := make(chan Message, 16)
	srv := NewPadServer()
	srv.OnMessage = func(m Message) { got <- m }
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, strings.TrimPrefix(ts.URL, "http://"), got
}

func next(t *testing.T, ch chan Message) Message {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestGestureMessageRoundTrip(t *testing.T) {
	ev := state.Event{Kind: state.GestureMove, Point: state.Point{X: 50, Y: 25}}
	m := GestureMessage(ev, 100, 50)
	assert.Equal(t, Message{Type: TypeGesture, Kind: "move", X: 0.5, Y: 0.5}, m)

	got, ok := m.Event(200, 80)
	require.True(t, ok)
	assert.Equal(t, state.Event{Kind: state.GestureMove, Point: state.Point{X: 100, Y: 40}}, got)

	_, ok = Message{Type: TypeClear}.Event(1, 1)
	assert.False(t, ok)
	_, ok = Message{Type: TypeGesture, Kind: "pinch"}.Event(1, 1)
	assert.False(t, ok)
}

func TestPadStreamsGestures(t *testing.T) {
	srv, addr, got := startServer(t)

	pad, err := DialPad(addr)
	require.NoError(t, err)
	defer pad.Close()

	hello := next(t, got)
	assert.Equal(t, TypeHello, hello.Type)
	assert.Equal(t, state.SessionID, hello.Pad)
	assert.Equal(t, 1, srv.Peers())

	require.NoError(t, pad.Send(GestureMessage(state.Event{Kind: state.GestureStart, Point: state.Point{X: 1, Y: 1}}, 2, 2)))
	require.NoError(t, pad.Send(Message{Type: TypeSave}))

	m := next(t, got)
	assert.Equal(t, TypeGesture, m.Type)
	assert.Equal(t, "start", m.Kind)
	assert.Equal(t, TypeSave, next(t, got).Type)
}

func TestBroadcastReachesPad(t *testing.T) {
	srv, addr, got := startServer(t)
	pad, err := DialPad(addr)
	require.NoError(t, err)
	defer pad.Close()
	next(t, got)

	status := make(chan Message, 1)
	go pad.Listen(func(m Message) { status <- m })
	srv.Broadcast(Message{Type: TypeStatus, Text: "saved"})

	select {
	case m := <-status:
		assert.Equal(t, "saved", m.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("pad did not receive broadcast")
	}
}

func TestPeerRemovedOnClose(t *testing.T) {
	srv, addr, got := startServer(t)
	pad, err := DialPad(addr)
	require.NoError(t, err)
	next(t, got)
	require.NoError(t, pad.Close())

	assert.Eventually(t, func() bool { return srv.Peers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestDialPadFails(t *testing.T) {
	_, err := DialPad("127.0.0.1:1")
	assert.Error(t, err)
}

func TestNewService(t *testing.T) {
	svc, err := newService("desk", "desk.local.", 8889, []net.IP{net.IPv4(192, 168, 1, 2)})
	require.NoError(t, err)
	assert.Equal(t, ServiceType, svc.Service)
	assert.Equal(t, 8889, svc.Port)
}

func TestShareLink(t *testing.T) {
	link := ShareLink("sigpad://", 8889)
	assert.True(t, strings.HasPrefix(link, "sigpad://"))
	assert.True(t, strings.HasSuffix(link, ":8889"))
}
