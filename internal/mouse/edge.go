package mouse

import "hypr-grid/internal/wm"

// Edge is the outcome of checking the cursor against the screen borders.
type Edge struct {
	// DX and DY are the grid steps, -1, 0 or 1.
	DX, DY int
	// Cursor is where the pointer goes after the switch, on the opposite
	// side of the screen.
	Cursor wm.Point
}

func (e Edge) Triggered() bool {
	return e.DX != 0 || e.DY != 0
}

// Horizontal reports whether the x axis triggered. It wins over the y axis
// when choosing the animation for a corner.
func (e Edge) Horizontal() bool {
	return e.DX != 0
}

// Detect checks cursor against the borders of monitor. A band of width
// pixels counts as the edge; margin is the inset used when the cursor is
// moved to the opposite border. Both are in layout coordinates, so the
// monitor scale and rotation are taken into account.
func Detect(cursor wm.Point, monitor wm.Monitor, width, margin int) Edge {
	e := Edge{Cursor: cursor}
	w, h := monitor.LogicalSize()
	x := cursor.X - monitor.X
	y := cursor.Y - monitor.Y

	switch {
	case x <= width:
		e.DX = -1
		e.Cursor.X = monitor.X + w - margin
	case x >= w-1-width:
		e.DX = 1
		e.Cursor.X = monitor.X + margin
	}

	switch {
	case y <= width:
		e.DY = -1
		e.Cursor.Y = monitor.Y + h - margin
	case y >= h-1-width:
		e.DY = 1
		e.Cursor.Y = monitor.Y + margin
	}

	return e
}
