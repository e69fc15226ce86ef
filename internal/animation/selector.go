// Package animation reconfigures the workspace switch animation before a
// switch, so horizontal, vertical and activity moves can look different.
package animation

import (
	"context"
	"fmt"

	"hypr-grid/pkg/config"
	"hypr-grid/pkg/core"
)

// Kind is the movement an animation is chosen for.
type Kind int

const (
	Horizontal Kind = iota
	Vertical
	Activity
)

func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Activity:
		return "activity"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KeywordSetter is the part of the compositor the selector needs.
type KeywordSetter interface {
	Keyword(ctx context.Context, key, value string) error
}

type profile struct {
	curve string
	style string
}

// Selector holds the animation profile of every kind.
type Selector struct {
	enabled  bool
	duration int
	profiles map[Kind]profile
	wm       KeywordSetter
	log      core.Logger
}

func NewSelector(cfg *config.Config, wm KeywordSetter, log core.Logger) *Selector {
	return &Selector{
		enabled:  cfg.EnableAnimations,
		duration: cfg.AnimationDuration,
		profiles: map[Kind]profile{
			Horizontal: {cfg.WorkspaceSwitchAnimationCurve, cfg.WorkspaceHorizontalSwitchAnimationStyle},
			Vertical:   {cfg.WorkspaceSwitchAnimationCurve, cfg.WorkspaceVerticalSwitchAnimationStyle},
			Activity:   {cfg.ActivitySwitchAnimationCurve, cfg.ActivitySwitchAnimationStyle},
		},
		wm:  wm,
		log: log,
	}
}

// Value returns the "animation" keyword value for kind. ok is false when
// no curve is configured for it.
func (s *Selector) Value(kind Kind) (value string, ok bool) {
	p := s.profiles[kind]
	if p.curve == "" {
		return "", false
	}

	enabled := 0
	if s.enabled {
		enabled = 1
	}
	return fmt.Sprintf("workspaces,%d,%d,%s,%s", enabled, s.duration, p.curve, p.style), true
}

// Apply sets the workspace animation for kind. Without a configured curve
// nothing is sent.
func (s *Selector) Apply(ctx context.Context, kind Kind) error {
	value, ok := s.Value(kind)
	if !ok {
		s.log.Debug("No animation curve configured", "kind", kind.String())
		return nil
	}

	s.log.Debug("Setting workspace animation", "kind", kind.String(), "value", value)
	if err := s.wm.Keyword(ctx, "animation", value); err != nil {
		return fmt.Errorf("failed to set %s animation: %w", kind, err)
	}
	return nil
}
