package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"hypr-grid/pkg/core"
)

var ErrCommandFailed = errors.New("hyprland rejected command")

// Client sends requests over the Hyprland request socket. Every request
// uses its own connection; Hyprland closes it after replying.
type Client struct {
	socketPath string
	log        core.Logger
}

func NewClient(socketPath string, log core.Logger) *Client {
	return &Client{socketPath: socketPath, log: log}
}

// Request sends a raw command and returns the full reply.
func (c *Client) Request(ctx context.Context, command string) ([]byte, error) {
	c.log.Debug("Sending request", "path", c.socketPath, "command", command)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		c.log.Error("Failed to connect to request socket", err, "path", c.socketPath)
		return nil, fmt.Errorf("failed to connect to %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if _, err := io.WriteString(conn, command); err != nil {
		c.log.Error("Failed to write request", err, "command", command)
		return nil, fmt.Errorf("failed to send %q: %w", command, err)
	}

	reply, err := io.ReadAll(conn)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		c.log.Error("Failed to read reply", err, "command", command)
		return nil, fmt.Errorf("failed to read reply to %q: %w", command, err)
	}

	c.log.Debug("Reply received", "command", command, "size_bytes", len(reply))
	return reply, nil
}

// Query runs a read-only command with JSON output and decodes it into v.
func (c *Client) Query(ctx context.Context, command string, v interface{}) error {
	reply, err := c.Request(ctx, "j/"+command)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(reply, v); err != nil {
		c.log.Error("Failed to parse reply", err, "command", command, "reply", string(reply))
		return fmt.Errorf("failed to parse reply to %q: %w", command, err)
	}
	return nil
}

// Dispatch runs a dispatcher, e.g. Dispatch(ctx, "workspace", "name:work:1").
func (c *Client) Dispatch(ctx context.Context, dispatcher string, args ...string) error {
	return c.command(ctx, "dispatch "+strings.Join(append([]string{dispatcher}, args...), " "))
}

// Keyword sets a configuration value at runtime.
func (c *Client) Keyword(ctx context.Context, key, value string) error {
	return c.command(ctx, "keyword "+key+" "+value)
}

func (c *Client) command(ctx context.Context, command string) error {
	reply, err := c.Request(ctx, command)
	if err != nil {
		return err
	}
	if r := strings.TrimSpace(string(reply)); r != "ok" {
		return fmt.Errorf("%w: %q: %s", ErrCommandFailed, command, r)
	}
	return nil
}
