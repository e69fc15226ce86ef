// Package grid maps activities to their workspace grids and computes
// navigation targets. Nothing here talks to the compositor.
package grid

import (
	"fmt"
	"strings"
)

const (
	DefaultActivity = "default"
	DefaultSize     = 3

	// Separator joins an activity name and a workspace number.
	Separator = ":"
)

// Grid is the immutable set of activities and their workspace names.
type Grid struct {
	activities []string
	workspaces [][]string
	width      int
	height     int
}

// Build creates the grid for the given activities. An empty list yields a
// single "default" activity and non-positive dimensions fall back to 3x3.
func Build(activities []string, width, height int) *Grid {
	if width <= 0 || height <= 0 {
		width, height = DefaultSize, DefaultSize
	}

	names := append([]string(nil), activities...)
	if len(names) == 0 {
		names = []string{DefaultActivity}
	}

	workspaces := make([][]string, len(names))
	for a, activity := range names {
		workspaces[a] = make([]string, width*height)
		for i := range workspaces[a] {
			workspaces[a][i] = WorkspaceName(activity, i)
		}
	}

	return &Grid{
		activities: names,
		workspaces: workspaces,
		width:      width,
		height:     height,
	}
}

// WorkspaceName formats the external name of a slot, numbered from 1.
func WorkspaceName(activity string, index int) string {
	return fmt.Sprintf("%s%s%d", activity, Separator, index+1)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Size is the number of workspaces per activity.
func (g *Grid) Size() int { return g.width * g.height }

// Activities returns a copy of the activity names in cycle order.
func (g *Grid) Activities() []string {
	return append([]string(nil), g.activities...)
}

// Activity returns the name of the activity at index a.
func (g *Grid) Activity(a int) string {
	return g.activities[a]
}

// Workspaces returns a copy of the workspace names of activity a.
func (g *Grid) Workspaces(a int) []string {
	return append([]string(nil), g.workspaces[a]...)
}

// Name returns the workspace name of slot i in activity a.
func (g *Grid) Name(a, i int) string {
	return g.workspaces[a][i]
}

// Position splits a slot index into its row and column.
func (g *Grid) Position(i int) (row, col int) {
	return i / g.width, i % g.width
}

// Index is the inverse of Position.
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// trimActivity strips the activity prefix from a workspace name.
func trimActivity(name, activity string) (string, bool) {
	if name == activity {
		return "", true
	}
	if strings.HasPrefix(name, activity+Separator) {
		return name[len(activity):], true
	}
	return "", false
}
