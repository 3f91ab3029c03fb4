package imui

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key identifies a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// Key repeat timing.
const (
	KeyRepeatDelay    float32 = 0.4  // Seconds before repeat starts
	KeyRepeatInterval float32 = 0.03 // Seconds between repeats
)

type inputEventKind int

const (
	eventMouseButton inputEventKind = iota
	eventMousePos
	eventMouseWheel
	eventKey
	eventChar
)

type inputEvent struct {
	kind   inputEventKind
	button MouseButton
	key    Key
	down   bool
	x, y   float32
	ch     rune
}

// InputState collects input events and exposes per-frame queries.
// Events are buffered as they arrive (typically from platform
// callbacks during the host's event poll) and applied at the start of
// the next frame, so edge queries like MouseClicked are stable for
// the whole frame regardless of when the event landed.
type InputState struct {
	queue []inputEvent

	// Mouse position
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame the button went down
	mouseUp      [MouseButtonCount]bool // True on the frame the button went up

	MouseWheelX float32
	MouseWheelY float32

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool
	keyUp      [KeyCount]bool

	keyHoldTime [KeyCount]float32

	// Unicode characters typed this frame
	InputChars []rune

	// Modifiers, derived from key state or set directly
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// AddMouseButtonEvent queues a button press or release.
func (s *InputState) AddMouseButtonEvent(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.queue = append(s.queue, inputEvent{kind: eventMouseButton, button: button, down: down})
}

// AddMousePosEvent queues a cursor move.
func (s *InputState) AddMousePosEvent(x, y float32) {
	s.queue = append(s.queue, inputEvent{kind: eventMousePos, x: x, y: y})
}

// AddMouseWheelEvent queues scroll deltas. Deltas accumulate within
// a frame.
func (s *InputState) AddMouseWheelEvent(x, y float32) {
	s.queue = append(s.queue, inputEvent{kind: eventMouseWheel, x: x, y: y})
}

// AddKeyEvent queues a key press or release.
func (s *InputState) AddKeyEvent(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.queue = append(s.queue, inputEvent{kind: eventKey, key: key, down: down})
}

// AddInputCharacter queues a typed Unicode character.
func (s *InputState) AddInputCharacter(ch rune) {
	s.queue = append(s.queue, inputEvent{kind: eventChar, ch: ch})
}

// SetModifiers sets the modifier state directly. Platform backends
// call this with the modifier bits delivered alongside key events.
func (s *InputState) SetModifiers(ctrl, shift, alt, super bool) {
	s.ModCtrl = ctrl
	s.ModShift = shift
	s.ModAlt = alt
	s.ModSuper = super
}

// newFrame clears last frame's edges and applies the queued events.
// Called from Context.NewFrame with the frame delta.
func (s *InputState) newFrame(dt float32) {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
		s.keyUp[i] = false
	}
	if s.InputChars == nil {
		s.InputChars = make([]rune, 0, 16)
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0

	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}

	for _, ev := range s.queue {
		switch ev.kind {
		case eventMouseButton:
			was := s.mouseDown[ev.button]
			s.mouseDown[ev.button] = ev.down
			if ev.down && !was {
				s.mouseClicked[ev.button] = true
			}
			if !ev.down && was {
				s.mouseUp[ev.button] = true
			}
		case eventMousePos:
			s.MouseX = ev.x
			s.MouseY = ev.y
		case eventMouseWheel:
			s.MouseWheelX += ev.x
			s.MouseWheelY += ev.y
		case eventKey:
			was := s.keyDown[ev.key]
			s.keyDown[ev.key] = ev.down
			if ev.down && !was {
				s.keyPressed[ev.key] = true
				s.keyHoldTime[ev.key] = 0
			}
			if !ev.down && was {
				s.keyUp[ev.key] = true
				s.keyHoldTime[ev.key] = 0
			}
		case eventChar:
			s.InputChars = append(s.InputChars, ev.ch)
		}
	}
	s.queue = s.queue[:0]
}

// MouseDown returns true while a button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true on the frame a button went down.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true on the frame a button went up.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true while a key is held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true on the frame a key went down.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true on the frame a key went up.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true on the initial press, then after
// KeyRepeatDelay, then every KeyRepeatInterval while held. Use for
// actions that should repeat, like backspace in a text field.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}
	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}
	// Fire when a repeat interval boundary was crossed this frame.
	// Approximates the previous frame at 60fps, which is close enough
	// for typing cadence.
	sinceDelay := holdTime - KeyRepeatDelay
	repeats := int(sinceDelay / KeyRepeatInterval)
	prevRepeats := int((sinceDelay - 0.016) / KeyRepeatInterval)
	return repeats > prevRepeats
}

// HasInputChars returns true if characters were typed this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars clears this frame's typed characters. Call after
// handling a keyboard shortcut so the key does not also land in a
// text field.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
