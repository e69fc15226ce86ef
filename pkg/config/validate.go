package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the values the grid and the mouse loop depend on.
func (c *Config) Validate() error {
	if c.Workspaces[0] <= 0 || c.Workspaces[1] <= 0 {
		return fmt.Errorf("%w: workspaces must be positive, got %v", ErrInvalidConfig, c.Workspaces)
	}
	if c.PollingRate <= 0 {
		return fmt.Errorf("%w: polling_rate must be positive, got %d", ErrInvalidConfig, c.PollingRate)
	}
	if c.EdgeWidth < 0 || c.EdgeMargin < 0 {
		return fmt.Errorf("%w: edge_width and edge_margin must not be negative", ErrInvalidConfig)
	}
	if c.AnimationDuration < 0 {
		return fmt.Errorf("%w: animation_duration must not be negative", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Activities))
	for _, name := range c.Activities {
		if name == "" {
			return fmt.Errorf("%w: empty activity name", ErrInvalidConfig)
		}
		// the separator would make workspace names ambiguous
		if strings.Contains(name, ":") {
			return fmt.Errorf("%w: activity name %q contains ':'", ErrInvalidConfig, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate activity %q", ErrInvalidConfig, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
