package grid

import (
	"errors"
	"fmt"
)

var (
	ErrNotInManagedWorkspace = errors.New("not in a managed workspace")
	ErrActivityNotFound      = errors.New("activity not found")
	ErrWorkspaceNotFound     = errors.New("workspace not found")
)

// Direction selects the neighbouring activity in cycle order.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Location addresses a workspace name inside the grid.
type Location struct {
	Activity int
	// Workspace is -1 when the name belongs to the activity but is not
	// one of its grid slots.
	Workspace int
}

// Managed reports whether the location is a grid slot.
func (l Location) Managed() bool {
	return l.Workspace >= 0
}

// ActivityIndex returns the first activity, in cycle order, that name
// belongs to. A name belongs to an activity when it equals the activity
// or starts with the activity followed by the separator.
func (g *Grid) ActivityIndex(name string) (int, bool) {
	for a, activity := range g.activities {
		if _, ok := trimActivity(name, activity); ok {
			return a, true
		}
	}
	return 0, false
}

// Locate resolves a workspace name to its activity and slot.
func (g *Grid) Locate(name string) (Location, bool) {
	a, ok := g.ActivityIndex(name)
	if !ok {
		return Location{}, false
	}

	loc := Location{Activity: a, Workspace: -1}
	for i, w := range g.workspaces[a] {
		if w == name {
			loc.Workspace = i
			break
		}
	}
	return loc, true
}

// MoveIndex applies (dx, dy) to the column and row of slot i. With cycle
// each axis wraps around, otherwise it stops at the grid border.
func (g *Grid) MoveIndex(i, dx, dy int, cycle bool) int {
	row, col := g.Position(i)
	col = step(col, dx, g.width, cycle)
	row = step(row, dy, g.height, cycle)
	return g.Index(row, col)
}

func step(v, d, n int, cycle bool) int {
	v += d
	if cycle {
		return ((v % n) + n) % n
	}
	return max(0, min(v, n-1))
}

// Move returns the workspace reached from current by (dx, dy) within the
// same activity.
func (g *Grid) Move(current string, dx, dy int, cycle bool) (string, error) {
	loc, ok := g.Locate(current)
	if !ok || !loc.Managed() {
		return "", fmt.Errorf("%w: %q", ErrNotInManagedWorkspace, current)
	}
	return g.workspaces[loc.Activity][g.MoveIndex(loc.Workspace, dx, dy, cycle)], nil
}

// StepActivity returns the activity next to current in direction dir.
// A negative current means the active activity is unknown and yields 0.
func (g *Grid) StepActivity(current int, dir Direction, cycle bool) int {
	if current < 0 {
		return 0
	}
	return step(current, int(dir), len(g.activities), cycle)
}

// ActivityTarget picks the workspace to open in activity target. The
// suffix of current after its activity prefix is kept, so "work:5" maps
// to "home:5"; without a suffix the first slot of target is used.
func (g *Grid) ActivityTarget(current string, target int) string {
	if a, ok := g.ActivityIndex(current); ok {
		if suffix, _ := trimActivity(current, g.activities[a]); suffix != "" {
			return g.activities[target] + suffix
		}
	}
	return g.workspaces[target][0]
}

// NextActivity combines StepActivity and ActivityTarget for current.
func (g *Grid) NextActivity(current string, dir Direction, cycle bool) string {
	a, ok := g.ActivityIndex(current)
	if !ok {
		a = -1
	}
	return g.ActivityTarget(current, g.StepActivity(a, dir, cycle))
}

// SwitchActivity returns the workspace to open when jumping to the
// activity called name.
func (g *Grid) SwitchActivity(current, name string) (string, error) {
	for a, activity := range g.activities {
		if activity == name {
			return g.ActivityTarget(current, a), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrActivityNotFound, name)
}

// WorkspaceInActivity names workspace local of the activity current
// belongs to.
func (g *Grid) WorkspaceInActivity(current, local string) (string, error) {
	a, ok := g.ActivityIndex(current)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotInManagedWorkspace, current)
	}
	return g.activities[a] + Separator + local, nil
}

// Lookup checks that name is a grid slot.
func (g *Grid) Lookup(name string) (string, error) {
	loc, ok := g.Locate(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrActivityNotFound, name)
	}
	if !loc.Managed() {
		return "", fmt.Errorf("%w: %q", ErrWorkspaceNotFound, name)
	}
	return g.workspaces[loc.Activity][loc.Workspace], nil
}
