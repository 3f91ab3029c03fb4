package imui

// StateStore persists widget state between frames. The default is an
// in-memory map; hosts can plug in their own to inspect or serialize
// widget state.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is the default in-memory StateStore.
type MapStateStore map[ID]any

func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state for a widget. Returns defaultVal if
// the state does not exist or has the wrong type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state for a widget.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes a widget's state.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// Widget state types.

// InputTextState tracks the editing state of a text input: cursor,
// selection, horizontal scroll, and blink phase. Positions are in
// runes, not bytes.
type InputTextState struct {
	// Editing is true while the widget captures keyboard input.
	Editing bool

	CursorPos int

	// Selection anchor and head. The head follows the cursor.
	// -1 means no selection.
	SelectionStart int
	SelectionEnd   int

	// Horizontal scroll for text wider than the field
	ScrollOffset float32

	CursorBlinkTime float32
}

// HasSelection returns true if a nonempty selection exists.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// SelectedRange returns the selection as (start, end) with
// start <= end, or (-1, -1) when there is none.
func (s *InputTextState) SelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

// ClearSelection removes the selection.
func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

// SelectAll selects the whole text and moves the cursor to its end.
func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// TreeNodeState tracks open state for collapsing headers.
type TreeNodeState struct {
	Open bool
}

// SliderState tracks an in-progress grab drag.
type SliderState struct {
	Dragging bool
}

// DragState tracks an in-progress value drag.
type DragState struct {
	Dragging       bool
	DragStartX     float32
	DragStartValue float32
}

// TableState persists per-table layout between frames.
type TableState struct {
	ColumnWidths []float32
}
