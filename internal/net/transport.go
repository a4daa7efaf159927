package net

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"SignaturePad/internal/state"

	"github.com/gorilla/websocket"
)

// PadPath is the websocket endpoint a remote pad connects to.
const PadPath = "/pad"

const (
	TypeHello   = "hello"
	TypeGesture = "gesture"
	TypeClear   = "clear"
	TypeSave    = "save"
	TypeCancel  = "cancel"
	TypeStatus  = "status"
)

// Message is one frame of the pad protocol. Gesture coordinates are
// normalised to [0,1] so pads and hosts may use different surface sizes.
type Message struct {
	Type string  `json:"type"`
	Pad  string  `json:"pad,omitempty"`
	Kind string  `json:"kind,omitempty"`
	X    float32 `json:"x,omitempty"`
	Y    float32 `json:"y,omitempty"`
	Text string  `json:"text,omitempty"`
}

// GestureMessage converts ev from a width x height surface into a frame.
func GestureMessage(ev state.Event, width, height float32) Message {
	m := Message{Type: TypeGesture, Kind: ev.Kind.String()}
	if width > 0 && height > 0 {
		m.X = ev.Point.X / width
		m.Y = ev.Point.Y / height
	}
	return m
}

// Event maps a gesture frame onto a width x height surface.
func (m Message) Event(width, height float32) (state.Event, bool) {
	if m.Type != TypeGesture {
		return state.Event{}, false
	}
	kind, ok := state.ParseGestureKind(m.Kind)
	if !ok {
		return state.Event{}, false
	}
	return state.Event{Kind: kind, Point: state.Point{X: m.X * width, Y: m.Y * height}}, true
}

// PadServer is run by the HOST and accepts remote pads.
type PadServer struct {
	// OnMessage is called from the connection goroutine for every frame.
	OnMessage func(m Message)

	upgrader websocket.Upgrader
	peers    map[*websocket.Conn]string
	mu       sync.Mutex
	srv      *http.Server
}

// NewPadServer creates a server with no peers.
func NewPadServer() *PadServer {
	return &PadServer{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		peers: make(map[*websocket.Conn]string),
	}
}

// ServeHTTP upgrades the request and reads frames until the pad disconnects.
func (s *PadServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[REMOTE] Upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.peers[conn] = r.RemoteAddr
	s.mu.Unlock()
	log.Printf("[REMOTE] Pad connected from %s", r.RemoteAddr)
	defer func() {
		s.mu.Lock()
		delete(s.peers, conn)
		s.mu.Unlock()
		log.Printf("[REMOTE] Pad %s disconnected", r.RemoteAddr)
	}()

	for {
		var m Message
		if err := conn.ReadJSON(&m); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[REMOTE] Read from %s: %v", r.RemoteAddr, err)
			}
			return
		}
		if m.Type == TypeHello {
			s.mu.Lock()
			s.peers[conn] = m.Pad
			s.mu.Unlock()
		}
		if s.OnMessage != nil {
			s.OnMessage(m)
		}
	}
}

// Peers returns the number of connected pads.
func (s *PadServer) Peers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.peers)
}

// Broadcast sends m to every connected pad.
func (s *PadServer) Broadcast(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, id := range s.peers {
		conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := conn.WriteJSON(m); err != nil {
			log.Printf("[REMOTE] Error sending to %s: %v", id, err)
		}
	}
}

// ListenAndServe serves the pad endpoint on port until Close.
func (s *PadServer) ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.Handle(PadPath, s)
	s.mu.Lock()
	s.srv = &http.Server{Addr: ":" + strconv.Itoa(port), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	srv := s.srv
	s.mu.Unlock()

	log.Printf("[REMOTE] Listening for pads on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("pad server: %w", err)
	}
	return nil
}

// Close stops the listener and drops every pad.
func (s *PadServer) Close() error {
	s.mu.Lock()
	srv := s.srv
	for conn := range s.peers {
		conn.Close()
	}
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Close()
}

// PadClient is run by a remote pad to stream gestures to a host.
type PadClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// DialPad connects to a host at addr (host:port) and introduces this pad.
func DialPad(addr string) (*PadClient, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial("ws://"+addr+PadPath, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	c := &PadClient{conn: conn}
	if err := c.Send(Message{Type: TypeHello, Pad: state.SessionID}); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// Send writes one frame. It is safe for concurrent use.
func (c *PadClient) Send(m Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(m); err != nil {
		return fmt.Errorf("send %s: %w", m.Type, err)
	}
	return nil
}

// Listen delivers frames from the host until the connection drops.
func (c *PadClient) Listen(fn func(Message)) error {
	for {
		var m Message
		if err := c.conn.ReadJSON(&m); err != nil {
			return err
		}
		fn(m)
	}
}

// Close says goodbye and closes the connection.
func (c *PadClient) Close() error {
	c.mu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	c.mu.Unlock()
	return c.conn.Close()
}
