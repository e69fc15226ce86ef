package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateEverySlot(t *testing.T) {
	g := Build([]string{"work", "home", "play"}, 3, 3)

	for a := range g.Activities() {
		for i := 0; i < g.Size(); i++ {
			loc, ok := g.Locate(g.Name(a, i))
			require.True(t, ok)
			assert.Equal(t, Location{Activity: a, Workspace: i}, loc)
		}
	}
}

func TestLocateUnmanaged(t *testing.T) {
	g := Build([]string{"work", "home"}, 3, 3)

	loc, ok := g.Locate("home:scratch")
	require.True(t, ok)
	assert.Equal(t, 1, loc.Activity)
	assert.False(t, loc.Managed())

	_, ok = g.Locate("3")
	assert.False(t, ok)
}

func TestActivityIndexIsDelimiterAware(t *testing.T) {
	g := Build([]string{"work", "work2"}, 3, 3)

	a, ok := g.ActivityIndex("work2:4")
	require.True(t, ok)
	assert.Equal(t, 1, a)

	a, ok = g.ActivityIndex("work:4")
	require.True(t, ok)
	assert.Equal(t, 0, a)

	a, ok = g.ActivityIndex("work")
	require.True(t, ok)
	assert.Equal(t, 0, a)

	_, ok = g.ActivityIndex("workshop:1")
	assert.False(t, ok)
}

func TestMoveIndexCycleIsInvertible(t *testing.T) {
	g := Build(nil, 3, 3)

	for i := 0; i < g.Size(); i++ {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				moved := g.MoveIndex(i, dx, dy, true)
				assert.GreaterOrEqual(t, moved, 0)
				assert.Less(t, moved, g.Size())
				assert.Equal(t, i, g.MoveIndex(moved, -dx, -dy, true), "start %d d=(%d,%d)", i, dx, dy)
			}
		}
	}
}

func TestMoveIndexClamps(t *testing.T) {
	g := Build(nil, 3, 3)

	for _, i := range []int{0, 3, 6} {
		assert.Equal(t, i, g.MoveIndex(i, -1, 0, false))
	}
	for _, i := range []int{2, 5, 8} {
		assert.Equal(t, i, g.MoveIndex(i, 1, 0, false))
	}
	assert.Equal(t, 1, g.MoveIndex(1, 0, -1, false))
	assert.Equal(t, 7, g.MoveIndex(7, 0, 1, false))
	assert.Equal(t, 8, g.MoveIndex(4, 1, 1, false))
}

func TestMoveIndexRectangular(t *testing.T) {
	g := Build(nil, 4, 2)

	assert.Equal(t, 3, g.MoveIndex(0, -1, 0, true))
	assert.Equal(t, 4, g.MoveIndex(0, 0, 1, true))
	assert.Equal(t, 0, g.MoveIndex(4, 0, 1, true))
	assert.Equal(t, 7, g.MoveIndex(7, 1, 1, false))
}

func TestMove(t *testing.T) {
	g := Build([]string{"work", "home"}, 3, 3)

	tests := []struct {
		name    string
		current string
		dx, dy  int
		cycle   bool
		want    string
	}{
		{"right clamp", "work:5", 1, 0, false, "work:6"},
		{"right wraps", "work:6", 1, 0, true, "work:4"},
		{"right stops", "work:6", 1, 0, false, "work:6"},
		{"left wraps", "home:1", -1, 0, true, "home:3"},
		{"up wraps", "home:2", 0, -1, true, "home:8"},
		{"down", "work:2", 0, 1, false, "work:5"},
		{"down stops", "work:8", 0, 1, false, "work:8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Move(tt.current, tt.dx, tt.dy, tt.cycle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoveOutsideGrid(t *testing.T) {
	g := Build([]string{"work"}, 3, 3)

	_, err := g.Move("1", 1, 0, true)
	assert.ErrorIs(t, err, ErrNotInManagedWorkspace)

	_, err = g.Move("work:10", 1, 0, true)
	assert.ErrorIs(t, err, ErrNotInManagedWorkspace)
}

func TestStepActivity(t *testing.T) {
	g := Build([]string{"a", "b", "c"}, 3, 3)

	assert.Equal(t, 0, g.StepActivity(-1, Next, true))
	assert.Equal(t, 0, g.StepActivity(-1, Prev, false))

	assert.Equal(t, 1, g.StepActivity(0, Next, false))
	assert.Equal(t, 2, g.StepActivity(2, Next, false))
	assert.Equal(t, 0, g.StepActivity(2, Next, true))

	assert.Equal(t, 0, g.StepActivity(0, Prev, false))
	assert.Equal(t, 2, g.StepActivity(0, Prev, true))
	assert.Equal(t, 1, g.StepActivity(2, Prev, true))
}

func TestNextActivity(t *testing.T) {
	g := Build([]string{"work", "home"}, 3, 3)

	assert.Equal(t, "home:5", g.NextActivity("work:5", Next, true))
	assert.Equal(t, "work:5", g.NextActivity("home:5", Next, true))
	assert.Equal(t, "home:5", g.NextActivity("home:5", Next, false))
	assert.Equal(t, "work:5", g.NextActivity("home:5", Prev, false))
	assert.Equal(t, "home:scratch", g.NextActivity("work:scratch", Prev, true))

	// unknown workspace falls back to the first slot of the first activity
	assert.Equal(t, "work:1", g.NextActivity("7", Next, true))
	// bare activity name has no suffix to keep
	assert.Equal(t, "home:1", g.NextActivity("work", Next, true))
}

func TestSwitchActivity(t *testing.T) {
	g := Build([]string{"work", "home"}, 3, 3)

	got, err := g.SwitchActivity("work:7", "home")
	require.NoError(t, err)
	assert.Equal(t, "home:7", got)

	got, err = g.SwitchActivity("1", "home")
	require.NoError(t, err)
	assert.Equal(t, "home:1", got)

	_, err = g.SwitchActivity("work:7", "play")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestWorkspaceInActivity(t *testing.T) {
	g := Build([]string{"work", "home"}, 3, 3)

	got, err := g.WorkspaceInActivity("home:2", "9")
	require.NoError(t, err)
	assert.Equal(t, "home:9", got)

	_, err = g.WorkspaceInActivity("2", "9")
	assert.ErrorIs(t, err, ErrNotInManagedWorkspace)
}

func TestLookup(t *testing.T) {
	g := Build([]string{"work", "home"}, 3, 3)

	got, err := g.Lookup("home:3")
	require.NoError(t, err)
	assert.Equal(t, "home:3", got)

	_, err = g.Lookup("play:3")
	assert.ErrorIs(t, err, ErrActivityNotFound)

	_, err = g.Lookup("home:0")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}
