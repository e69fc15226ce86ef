package ipc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"hypr-grid/pkg/core"
)

var ErrEventStreamClosed = errors.New("event socket closed")

// Event is one line of the Hyprland event socket, "NAME>>DATA".
type Event struct {
	Name string
	Data string
}

// ParseEvent splits a raw event line.
func ParseEvent(line string) (Event, bool) {
	name, data, ok := strings.Cut(line, ">>")
	if !ok || name == "" {
		return Event{}, false
	}
	return Event{Name: name, Data: data}, true
}

// Subscription streams events from the event socket in arrival order.
type Subscription struct {
	events chan Event
	err    error
}

// Subscribe connects to the event socket. Events are delivered until ctx
// is cancelled or the compositor closes the socket.
func Subscribe(ctx context.Context, socketPath string, log core.Logger) (*Subscription, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", socketPath)
	if err != nil {
		log.Error("Failed to connect to event socket", err, "path", socketPath)
		return nil, fmt.Errorf("failed to connect to %s: %w", socketPath, err)
	}
	log.Debug("Subscribed to events", "path", socketPath)

	s := &Subscription{events: make(chan Event)}
	go s.read(ctx, conn, log)
	return s, nil
}

// Events is closed when the subscription ends; Err then reports why.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Err must only be called after Events has been closed.
func (s *Subscription) Err() error {
	return s.err
}

func (s *Subscription) read(ctx context.Context, conn net.Conn, log core.Logger) {
	defer close(s.events)
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		ev, ok := ParseEvent(scanner.Text())
		if !ok {
			log.Debug("Skipping malformed event", "line", scanner.Text())
			continue
		}

		select {
		case s.events <- ev:
		case <-ctx.Done():
			s.err = ctx.Err()
			return
		}
	}

	switch {
	case ctx.Err() != nil:
		s.err = ctx.Err()
	case scanner.Err() != nil:
		s.err = fmt.Errorf("failed to read event socket: %w", scanner.Err())
	default:
		s.err = ErrEventStreamClosed
	}
}
