// Package ipctest runs a fake Hyprland instance on unix sockets for tests.
package ipctest

import (
	"bufio"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// Server answers on a request socket and feeds an event socket.
type Server struct {
	dir string

	mu       sync.Mutex
	replies  map[string]string
	requests []string

	requestListener net.Listener
	eventListener   net.Listener
	subscribers     chan net.Conn
	conns           []net.Conn
	wg              sync.WaitGroup
}

// NewServer starts both sockets in a temporary directory. Unknown commands
// are answered with "ok".
func NewServer(t testing.TB) *Server {
	t.Helper()

	// unix socket paths are short, keep them out of the test name dir
	dir, err := os.MkdirTemp("", "hypr")
	if err != nil {
		t.Fatalf("failed to create socket dir: %v", err)
	}

	s := &Server{
		dir:         dir,
		replies:     make(map[string]string),
		subscribers: make(chan net.Conn, 4),
	}

	s.requestListener, err = net.Listen("unix", s.RequestSocket())
	if err != nil {
		t.Fatalf("failed to listen on request socket: %v", err)
	}
	s.eventListener, err = net.Listen("unix", s.EventSocket())
	if err != nil {
		s.requestListener.Close()
		t.Fatalf("failed to listen on event socket: %v", err)
	}

	s.wg.Add(2)
	go s.serveRequests()
	go s.acceptSubscribers()

	t.Cleanup(func() {
		s.Close()
		os.RemoveAll(dir)
	})
	return s
}

func (s *Server) Dir() string           { return s.dir }
func (s *Server) RequestSocket() string { return filepath.Join(s.dir, ".socket.sock") }
func (s *Server) EventSocket() string   { return filepath.Join(s.dir, ".socket2.sock") }

// Reply sets the answer for an exact command.
func (s *Server) Reply(command, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[command] = reply
}

// Requests returns the commands received so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Emit waits for a subscriber and writes the event lines to it.
func (s *Server) Emit(t testing.TB, lines ...string) {
	t.Helper()

	var conn net.Conn
	select {
	case conn = <-s.subscribers:
	case <-time.After(5 * time.Second):
		t.Fatal("no event subscriber connected")
	}
	// put it back for later calls
	s.subscribers <- conn

	for _, line := range lines {
		if _, err := io.WriteString(conn, line+"\n"); err != nil {
			t.Fatalf("failed to emit event: %v", err)
		}
	}
}

// CloseEvents disconnects every subscriber.
func (s *Server) CloseEvents() {
	for {
		select {
		case conn := <-s.subscribers:
			conn.Close()
		default:
			return
		}
	}
}

func (s *Server) Close() {
	s.requestListener.Close()
	s.eventListener.Close()
	s.CloseEvents()

	s.mu.Lock()
	for _, c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Server) serveRequests() {
	defer s.wg.Done()
	for {
		conn, err := s.requestListener.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns = append(s.conns, conn)
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	buf := make([]byte, 8192)
	n, err := bufio.NewReader(conn).Read(buf)
	if err != nil {
		return
	}
	command := strings.TrimSpace(string(buf[:n]))

	s.mu.Lock()
	s.requests = append(s.requests, command)
	reply, ok := s.replies[command]
	s.mu.Unlock()
	if !ok {
		reply = "ok"
	}

	io.WriteString(conn, reply)
}

func (s *Server) acceptSubscribers() {
	defer s.wg.Done()
	for {
		conn, err := s.eventListener.Accept()
		if err != nil {
			return
		}
		select {
		case s.subscribers <- conn:
		default:
			conn.Close()
		}
	}
}
