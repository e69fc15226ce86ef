package status

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"hypr-grid/internal/grid"
	"hypr-grid/internal/wm"
	"hypr-grid/internal/wm/wmtest"
	"hypr-grid/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRenderCenter(t *testing.T) {
	g := grid.Build([]string{"work", "home"}, 3, 3)

	text, ok := Render(g, "work:5")
	require.True(t, ok)
	assert.Equal(t, "███ ███ ███\n███     ███\n███ ███ ███", text)

	rows := strings.Split(text, "\n")
	require.Len(t, rows, 3)
	for r, row := range rows {
		cells := strings.Split(row, " ")
		if r == 1 {
			// the blank cell splits into empty fields
			assert.Equal(t, "███", cells[0])
			assert.Equal(t, "███", cells[len(cells)-1])
			continue
		}
		assert.Equal(t, []string{"███", "███", "███"}, cells)
	}
}

func TestRenderCorners(t *testing.T) {
	g := grid.Build([]string{"work"}, 3, 3)

	text, ok := Render(g, "work:1")
	require.True(t, ok)
	assert.Equal(t, "    ███ ███\n███ ███ ███\n███ ███ ███", text)

	text, ok = Render(g, "work:9")
	require.True(t, ok)
	assert.Equal(t, "███ ███ ███\n███ ███ ███\n███ ███    ", text)
}

func TestRenderRectangular(t *testing.T) {
	g := grid.Build([]string{"work"}, 2, 3)

	text, ok := Render(g, "work:4")
	require.True(t, ok)
	assert.Equal(t, "███ ███\n███    \n███ ███", text)
}

func TestRenderUnmanaged(t *testing.T) {
	g := grid.Build([]string{"work"}, 3, 3)

	_, ok := Render(g, "work:scratch")
	assert.False(t, ok)
	_, ok = Render(g, "2")
	assert.False(t, ok)
}

func decodeLines(t *testing.T, out string) []string {
	t.Helper()
	var texts []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var l Line
		require.NoError(t, json.Unmarshal([]byte(line), &l))
		texts = append(texts, l.Text)
	}
	return texts
}

func TestPrinterRun(t *testing.T) {
	g := grid.Build([]string{"work", "home"}, 3, 3)
	fake := wmtest.New("work:5", 1920, 1080)
	var out bytes.Buffer
	p := NewPrinter(g, fake, &out, logger.Nop())

	errc := make(chan error, 1)
	go func() { errc <- p.Run(context.Background()) }()

	fake.Events() <- wm.WorkspaceEvent{Name: "home:1"}
	fake.Events() <- wm.WorkspaceEvent{Name: "7"}
	fake.Events() <- wm.WorkspaceEvent{Name: "home:9"}
	close(fake.Events())

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrEventsClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("printer did not stop")
	}

	want := []string{}
	for _, name := range []string{"work:5", "home:1", "home:9"} {
		text, _ := Render(g, name)
		want = append(want, text)
	}
	assert.Equal(t, want, decodeLines(t, out.String()))
}

func TestPrinterRunCancel(t *testing.T) {
	g := grid.Build([]string{"work"}, 3, 3)
	fake := wmtest.New("work:1", 1920, 1080)
	var out bytes.Buffer
	p := NewPrinter(g, fake, &out, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- p.Run(ctx) }()

	fake.Events() <- wm.WorkspaceEvent{Name: "work:2"}
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("printer did not stop")
	}
	assert.Len(t, decodeLines(t, out.String()), 2)
}

func TestPrinterRunReportsStreamFailure(t *testing.T) {
	g := grid.Build([]string{"work"}, 3, 3)
	fake := wmtest.New("work:1", 1920, 1080)
	p := NewPrinter(g, fake, &bytes.Buffer{}, logger.Nop())

	errc := make(chan error, 1)
	go func() { errc <- p.Run(context.Background()) }()

	broken := errors.New("connection reset by peer")
	fake.Events() <- wm.WorkspaceEvent{Err: broken}

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, broken)
	case <-time.After(5 * time.Second):
		t.Fatal("printer did not stop")
	}
}

func TestPrinterRunQueryError(t *testing.T) {
	g := grid.Build(nil, 3, 3)
	fake := wmtest.New("default:1", 1920, 1080)
	boom := errors.New("no socket")
	fake.Fail("ActiveWorkspace", boom)

	err := NewPrinter(g, fake, &bytes.Buffer{}, logger.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
