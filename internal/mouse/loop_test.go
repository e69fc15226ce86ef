package mouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"hypr-grid/internal/animation"
	"hypr-grid/internal/grid"
	"hypr-grid/internal/wm"
	"hypr-grid/internal/wm/wmtest"
	"hypr-grid/pkg/config"
	"hypr-grid/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var monitor = wm.Monitor{Name: "DP-1", Width: 1920, Height: 1080, Focused: true}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		cursor wm.Point
		want   Edge
	}{
		{"middle", wm.Point{X: 960, Y: 540}, Edge{Cursor: wm.Point{X: 960, Y: 540}}},
		{"left", wm.Point{X: 2, Y: 540}, Edge{DX: -1, Cursor: wm.Point{X: 1918, Y: 540}}},
		{"left band edge", wm.Point{X: 5, Y: 540}, Edge{DX: -1, Cursor: wm.Point{X: 1918, Y: 540}}},
		{"inside band", wm.Point{X: 6, Y: 540}, Edge{Cursor: wm.Point{X: 6, Y: 540}}},
		{"right", wm.Point{X: 1915, Y: 540}, Edge{DX: 1, Cursor: wm.Point{X: 2, Y: 540}}},
		{"top", wm.Point{X: 960, Y: 0}, Edge{DY: -1, Cursor: wm.Point{X: 960, Y: 1078}}},
		{"bottom", wm.Point{X: 960, Y: 1079}, Edge{DY: 1, Cursor: wm.Point{X: 960, Y: 2}}},
		{"corner", wm.Point{X: 1919, Y: 1079}, Edge{DX: 1, DY: 1, Cursor: wm.Point{X: 2, Y: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.cursor, monitor, 5, 2))
		})
	}
}

func TestDetectZeroWidthBand(t *testing.T) {
	assert.Equal(t, -1, Detect(wm.Point{X: 0, Y: 500}, monitor, 0, 2).DX)
	assert.False(t, Detect(wm.Point{X: 1, Y: 500}, monitor, 0, 2).Triggered())
	assert.Equal(t, 1, Detect(wm.Point{X: 1919, Y: 500}, monitor, 0, 2).DX)
}

func TestDetectMonitorOffset(t *testing.T) {
	m := wm.Monitor{X: 1280, Width: 1920, Height: 1080}

	e := Detect(wm.Point{X: 1281, Y: 500}, m, 2, 4)
	assert.Equal(t, -1, e.DX)
	assert.Equal(t, 1280+1920-4, e.Cursor.X)
}

func TestDetectScaledMonitor(t *testing.T) {
	// 2560x1440 at 1.25 is 2048x1152 in layout coordinates
	m := wm.Monitor{Width: 2560, Height: 1440, Scale: 1.25}

	e := Detect(wm.Point{X: 2047, Y: 600}, m, 0, 2)
	assert.Equal(t, 1, e.DX)
	assert.Equal(t, 2, e.Cursor.X)

	e = Detect(wm.Point{X: 1000, Y: 1151}, m, 0, 2)
	assert.Equal(t, 1, e.DY)

	e = Detect(wm.Point{X: 0, Y: 600}, m, 0, 2)
	assert.Equal(t, 2046, e.Cursor.X)
}

func TestDetectRotatedMonitor(t *testing.T) {
	m := wm.Monitor{Width: 1920, Height: 1080, Scale: 1, Transform: 1}

	assert.Equal(t, 1, Detect(wm.Point{X: 1079, Y: 500}, m, 0, 2).DX)
	assert.Equal(t, 1, Detect(wm.Point{X: 500, Y: 1919}, m, 0, 2).DY)
	assert.False(t, Detect(wm.Point{X: 500, Y: 1500}, m, 0, 2).Triggered())
}

type fixture struct {
	loop *Loop
	wm   *wmtest.Fake
}

func newFixture(t *testing.T, cfg *config.Config, workspace string) fixture {
	t.Helper()
	fake := wmtest.New(workspace, monitor.Width, monitor.Height)
	g := grid.Build([]string{"work", "home"}, cfg.GridWidth(), cfg.GridHeight())
	anim := animation.NewSelector(cfg, fake, logger.Nop())
	return fixture{loop: NewLoop(cfg, g, fake, anim, logger.Nop()), wm: fake}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.EdgeWidth = 1
	cfg.EdgeMargin = 3
	cfg.PollingRate = 1
	return cfg
}

func TestTickLeftEdgeWraps(t *testing.T) {
	f := newFixture(t, testConfig(), "work:4")
	f.wm.SetCursor(wm.Point{X: 1, Y: 500})

	require.NoError(t, f.loop.Tick(context.Background(), monitor))

	assert.Equal(t, []string{
		"workspace work:6",
		"movecursor 1917 500",
	}, f.wm.Calls())
}

func TestTickAppliesAnimation(t *testing.T) {
	cfg := testConfig()
	cfg.WorkspaceSwitchAnimationCurve = "ease"
	cfg.WorkspaceHorizontalSwitchAnimationStyle = "slide"
	cfg.WorkspaceVerticalSwitchAnimationStyle = "slidevert"
	f := newFixture(t, cfg, "home:9")

	f.wm.SetCursor(wm.Point{X: 900, Y: 1079})
	require.NoError(t, f.loop.Tick(context.Background(), monitor))

	// the corner uses the horizontal style
	f.wm.SetCursor(wm.Point{X: 0, Y: 0})
	require.NoError(t, f.loop.Tick(context.Background(), monitor))

	assert.Equal(t, []string{
		"keyword animation workspaces,1,6,ease,slidevert",
		"workspace home:3",
		"movecursor 900 3",
		"keyword animation workspaces,1,6,ease,slide",
		"workspace home:8",
		"movecursor 1917 1077",
	}, f.wm.Calls())
}

func TestTickIdle(t *testing.T) {
	f := newFixture(t, testConfig(), "work:1")
	f.wm.SetCursor(wm.Point{X: 800, Y: 600})
	// an idle tick must not even query the workspace
	f.wm.Fail("ActiveWorkspace", errors.New("unexpected query"))

	require.NoError(t, f.loop.Tick(context.Background(), monitor))
	assert.Empty(t, f.wm.Calls())
}

func TestTickUnmanagedWorkspace(t *testing.T) {
	f := newFixture(t, testConfig(), "1")
	f.wm.SetCursor(wm.Point{X: 0, Y: 600})

	require.NoError(t, f.loop.Tick(context.Background(), monitor))
	assert.Empty(t, f.wm.Calls())
}

func TestTickSameWorkspace(t *testing.T) {
	cfg := testConfig()
	cfg.Workspaces = [2]int{1, 1}
	f := newFixture(t, cfg, "work:1")
	f.wm.SetCursor(wm.Point{X: 0, Y: 600})

	require.NoError(t, f.loop.Tick(context.Background(), monitor))
	assert.Empty(t, f.wm.Calls())
}

func TestTickTransportError(t *testing.T) {
	f := newFixture(t, testConfig(), "work:1")
	boom := errors.New("socket closed")
	f.wm.Fail("CursorPosition", boom)

	assert.ErrorIs(t, f.loop.Tick(context.Background(), monitor), boom)
}

func TestRun(t *testing.T) {
	f := newFixture(t, testConfig(), "home:5")
	f.wm.SetCursor(wm.Point{X: 1, Y: 500})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, f.loop.Run(ctx))

	// starts on the first workspace, wraps left once, then the cursor
	// rests away from the right band
	assert.Equal(t, []string{
		"workspace work:1",
		"workspace work:3",
		"movecursor 1917 500",
	}, f.wm.Calls())
}

func TestEffectiveMargin(t *testing.T) {
	assert.Equal(t, 2, EffectiveMargin(0, 2, logger.Nop()))
	assert.Equal(t, 8, EffectiveMargin(5, 8, logger.Nop()))
	assert.Equal(t, 7, EffectiveMargin(5, 2, logger.Nop()))
	assert.Equal(t, 7, EffectiveMargin(5, 6, logger.Nop()))
}

func TestTickNarrowMarginLeavesBand(t *testing.T) {
	cfg := testConfig()
	cfg.EdgeWidth = 5
	cfg.EdgeMargin = 2
	f := newFixture(t, cfg, "work:5")

	f.wm.SetCursor(wm.Point{X: 3, Y: 500})
	require.NoError(t, f.loop.Tick(context.Background(), monitor))

	// the wrapped cursor sits outside the right band, so the next tick is idle
	require.NoError(t, f.loop.Tick(context.Background(), monitor))

	assert.Equal(t, []string{
		"workspace work:4",
		"movecursor 1913 500",
	}, f.wm.Calls())
}

func TestRunFailsOnTransportError(t *testing.T) {
	f := newFixture(t, testConfig(), "work:1")
	boom := errors.New("socket closed")
	f.wm.Fail("ActiveMonitor", boom)

	err := f.loop.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
