package flight

// DragInput turns pointer drags into a clamped target offset for the
// airplane. Dragging is incremental: each move is measured from the previous
// move, not from where the drag started.
type DragInput struct {
	TargetX, TargetY float64

	Dragging bool
	// Marker is where the pointer currently is, for the on-screen indicator.
	MarkerX, MarkerY float64

	prevX, prevY float64
	t            InputTuning
}

func NewDragInput(t InputTuning) *DragInput {
	return &DragInput{t: t}
}

// Down starts a drag at screen position (x, y).
func (in *DragInput) Down(x, y float64) {
	in.Dragging = true
	in.prevX, in.prevY = x, y
	in.MarkerX, in.MarkerY = x, y
}

// Move applies the delta since the previous pointer position. It reports
// whether the event was consumed; moves outside a drag are ignored.
func (in *DragInput) Move(x, y float64) bool {
	if !in.Dragging {
		return false
	}
	dx := x - in.prevX
	dy := y - in.prevY

	// Screen Y grows downward, world Y upward.
	in.TargetX += dx * in.t.SensitivityX
	in.TargetY += -dy * in.t.SensitivityY
	in.TargetX = clampF(in.TargetX, in.t.MinX, in.t.MaxX)
	in.TargetY = clampF(in.TargetY, in.t.MinY, in.t.MaxY)

	in.prevX, in.prevY = x, y
	in.MarkerX, in.MarkerY = x, y
	return true
}

// Up ends the drag. Also used when the pointer leaves the surface.
func (in *DragInput) Up() {
	in.Dragging = false
}
