package imui_test

import (
	"testing"

	"github.com/immediate-mode/imui"
)

// frame runs one frame with the mouse/keyboard events already queued,
// calling body between NewFrame and Render.
func frame(t *testing.T, ctx *imui.Context, body func()) {
	t.Helper()
	ctx.NewFrame()
	body()
	if err := ctx.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestButtonNotClicked(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	frame(t, ctx, func() {
		if ctx.Button("Test Button") {
			t.Error("button should not be clicked without mouse input")
		}
	})
}

func TestButtonClick(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	// The first widget sits at the frame padding origin; (10, 10) is
	// inside any button there.
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		if ctx.Button("Click Me") {
			t.Error("button should not report a click while still pressed")
		}
	})

	io.AddMouseButtonEvent(imui.MouseButtonLeft, false)
	clicked := false
	frame(t, ctx, func() {
		clicked = ctx.Button("Click Me")
	})
	if !clicked {
		t.Error("button should report a click on release over it")
	}

	// Edge-triggered: no further clicks without new input.
	frame(t, ctx, func() {
		if ctx.Button("Click Me") {
			t.Error("click should not repeat on later frames")
		}
	})
}

func TestButtonReleaseOutsideNotClicked(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.Button("Click Me")
	})

	// Drag off the button before releasing.
	io.AddMousePosEvent(500, 500)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, false)
	frame(t, ctx, func() {
		if ctx.Button("Click Me") {
			t.Error("release outside the button should not count as a click")
		}
	})
}

func TestCheckboxToggle(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	checked := false

	frame(t, ctx, func() {
		if ctx.Checkbox("Enable", &checked) {
			t.Error("checkbox should not change without a click")
		}
	})
	if checked {
		t.Error("checkbox value should be unchanged")
	}

	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		if !ctx.Checkbox("Enable", &checked) {
			t.Error("checkbox should report the toggle")
		}
	})
	if !checked {
		t.Error("checkbox should be checked after the click")
	}
}

func TestRadioButton(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	mode := 0
	draw := func() {
		if ctx.RadioButton("First", mode == 0) {
			mode = 0
		}
		if ctx.RadioButton("Second", mode == 1) {
			mode = 1
		}
	}

	frame(t, ctx, draw)
	if mode != 0 {
		t.Fatalf("mode = %d, want 0", mode)
	}

	// The second radio is on the second row: frame height 21 plus
	// item spacing 4 puts it at y=29 with the default style.
	io.AddMousePosEvent(10, 35)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, draw)
	if mode != 1 {
		t.Errorf("mode = %d, want 1 after clicking the second option", mode)
	}
}

func TestSliderFloat(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	v := float32(0.5)

	frame(t, ctx, func() {
		if ctx.SliderFloat("value", &v, 0, 1) {
			t.Error("slider should not change without input")
		}
	})

	// Click at the right edge of the 200px track.
	io.AddMousePosEvent(203, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	changed := false
	frame(t, ctx, func() {
		changed = ctx.SliderFloat("value", &v, 0, 1)
	})
	if !changed {
		t.Error("slider should report the change")
	}
	if v != 1 {
		t.Errorf("v = %v, want 1 after clicking the right edge", v)
	}

	// Dragging stays latched while the button is held, even off the
	// track.
	io.AddMousePosEvent(4, 300)
	frame(t, ctx, func() {
		changed = ctx.SliderFloat("value", &v, 0, 1)
	})
	if !changed || v != 0 {
		t.Errorf("v = %v, want 0 while dragging at the left edge", v)
	}

	io.AddMouseButtonEvent(imui.MouseButtonLeft, false)
	frame(t, ctx, func() {
		ctx.SliderFloat("value", &v, 0, 1)
	})

	// Moving the mouse after release must not drag.
	io.AddMousePosEvent(203, 10)
	frame(t, ctx, func() {
		if ctx.SliderFloat("value", &v, 0, 1) {
			t.Error("slider should not change after the drag ended")
		}
	})
}

func TestDragFloat(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	v := float32(10)

	io.AddMousePosEvent(50, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.DragFloat("value", &v, 0.5, 0, 0)
	})

	io.AddMousePosEvent(150, 10)
	changed := false
	frame(t, ctx, func() {
		changed = ctx.DragFloat("value", &v, 0.5, 0, 0)
	})
	if !changed {
		t.Error("drag should report the change")
	}
	// 100 pixels at 0.5 per pixel.
	if v != 60 {
		t.Errorf("v = %v, want 60", v)
	}
}

func TestDragFloatClamped(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	v := float32(10)

	io.AddMousePosEvent(50, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.DragFloat("value", &v, 1, 0, 20)
	})

	io.AddMousePosEvent(150, 10)
	frame(t, ctx, func() {
		ctx.DragFloat("value", &v, 1, 0, 20)
	})
	if v != 20 {
		t.Errorf("v = %v, want clamp at 20", v)
	}
}

func TestCollapsingHeader(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	frame(t, ctx, func() {
		if ctx.CollapsingHeader("Section", nil, imui.TreeNodeFlagsNone) {
			t.Error("header should start closed without DefaultOpen")
		}
		if !ctx.CollapsingHeader("Open Section", nil, imui.TreeNodeFlagsDefaultOpen) {
			t.Error("header with DefaultOpen should start open")
		}
	})

	// Click the first header to open it.
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		if !ctx.CollapsingHeader("Section", nil, imui.TreeNodeFlagsNone) {
			t.Error("header should open on click")
		}
	})

	// Open state persists across frames.
	io.AddMouseButtonEvent(imui.MouseButtonLeft, false)
	io.AddMousePosEvent(500, 500)
	frame(t, ctx, func() {
		if !ctx.CollapsingHeader("Section", nil, imui.TreeNodeFlagsNone) {
			t.Error("header should stay open")
		}
	})
}

func TestCollapsingHeaderClose(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	visible := true
	frame(t, ctx, func() {
		ctx.CollapsingHeader("Closable", &visible, imui.TreeNodeFlagsDefaultOpen)
	})

	// The close box is the rightmost square of the header row. The
	// header spans to the display edge minus frame padding.
	io.AddMousePosEvent(790, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.CollapsingHeader("Closable", &visible, imui.TreeNodeFlagsDefaultOpen)
	})
	if visible {
		t.Error("clicking the close box should clear visible")
	}

	// A hidden header draws nothing and reports closed.
	frame(t, ctx, func() {
		if ctx.CollapsingHeader("Closable", &visible, imui.TreeNodeFlagsDefaultOpen) {
			t.Error("hidden header should return false")
		}
	})
}

func TestInputTextTyping(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""

	// Click into the field to focus it.
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil)
	})

	io.AddInputCharacter('H')
	io.AddInputCharacter('i')
	changed := false
	frame(t, ctx, func() {
		changed = ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil)
	})
	if !changed {
		t.Error("typing should report a change")
	}
	if buf != "Hi" {
		t.Errorf("buf = %q, want Hi", buf)
	}
}

func TestInputTextUnfocusedIgnoresInput(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""
	io.AddInputCharacter('x')
	frame(t, ctx, func() {
		if ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil) {
			t.Error("unfocused field should ignore typed characters")
		}
	})
	if buf != "" {
		t.Errorf("buf = %q, want empty", buf)
	}
}

func TestInputTextCapacity(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 3, imui.InputTextFlagsNone, nil)
	})

	for _, ch := range "abcdef" {
		io.AddInputCharacter(ch)
	}
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 3, imui.InputTextFlagsNone, nil)
	})
	if buf != "abc" {
		t.Errorf("buf = %q, want abc (capacity 3)", buf)
	}
}

func TestInputTextEnterReturnsTrue(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsEnterReturnsTrue, nil)
	})

	io.AddInputCharacter('a')
	frame(t, ctx, func() {
		if ctx.InputText("name", &buf, 0, imui.InputTextFlagsEnterReturnsTrue, nil) {
			t.Error("EnterReturnsTrue should suppress the edit notification")
		}
	})
	if buf != "a" {
		t.Errorf("buf = %q, want a", buf)
	}

	io.AddKeyEvent(imui.KeyEnter, true)
	frame(t, ctx, func() {
		if !ctx.InputText("name", &buf, 0, imui.InputTextFlagsEnterReturnsTrue, nil) {
			t.Error("Enter should return true")
		}
	})
}

func TestInputTextDecimalFilter(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("num", &buf, 0, imui.InputTextFlagsCharsDecimal, nil)
	})

	for _, ch := range "1a.5x" {
		io.AddInputCharacter(ch)
	}
	frame(t, ctx, func() {
		ctx.InputText("num", &buf, 0, imui.InputTextFlagsCharsDecimal, nil)
	})
	if buf != "1.5" {
		t.Errorf("buf = %q, want 1.5", buf)
	}
}

func TestInputTextUppercaseFilter(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("code", &buf, 0, imui.InputTextFlagsCharsUppercase, nil)
	})

	for _, ch := range "ab1" {
		io.AddInputCharacter(ch)
	}
	frame(t, ctx, func() {
		ctx.InputText("code", &buf, 0, imui.InputTextFlagsCharsUppercase, nil)
	})
	if buf != "AB1" {
		t.Errorf("buf = %q, want AB1", buf)
	}
}

func TestInputTextBackspace(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := "hello"
	// Click past the end of the text so the cursor lands after the
	// last rune.
	io.AddMousePosEvent(100, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil)
	})

	io.AddKeyEvent(imui.KeyBackspace, true)
	frame(t, ctx, func() {
		if !ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil) {
			t.Error("backspace should report a change")
		}
	})
	if buf != "hell" {
		t.Errorf("buf = %q, want hell", buf)
	}
}

func TestInputTextClipboard(t *testing.T) {
	ctx, platform, _ := newTestContext(t)
	io := ctx.IO()

	buf := "hello"
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil)
	})

	// Ctrl+A then Ctrl+C copies the whole buffer.
	io.SetModifiers(true, false, false, false)
	io.AddKeyEvent(imui.KeyA, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil)
	})
	io.AddKeyEvent(imui.KeyA, false)
	io.AddKeyEvent(imui.KeyC, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil)
	})
	if platform.clipboard != "hello" {
		t.Errorf("clipboard = %q, want hello", platform.clipboard)
	}

	// Ctrl+V pastes over the selection.
	platform.clipboard = "world"
	io.AddKeyEvent(imui.KeyC, false)
	io.AddKeyEvent(imui.KeyV, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, nil)
	})
	if buf != "world" {
		t.Errorf("buf = %q, want world", buf)
	}
}

func TestInputTextPasteRespectsCapacity(t *testing.T) {
	ctx, platform, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""
	platform.clipboard = "abcdefgh"

	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 4, imui.InputTextFlagsNone, nil)
	})

	io.SetModifiers(true, false, false, false)
	io.AddKeyEvent(imui.KeyV, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 4, imui.InputTextFlagsNone, nil)
	})
	if buf != "abcd" {
		t.Errorf("buf = %q, want abcd (capacity 4)", buf)
	}
}

func TestInputTextCallback(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := ""
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	cb := func(data *imui.InputTextCallbackData) {
		// Rewrite every edit to a fixed value.
		data.Buf = "fixed"
		data.CursorPos = 5
	}
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, cb)
	})

	io.AddInputCharacter('x')
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsNone, cb)
	})
	if buf != "fixed" {
		t.Errorf("buf = %q, want fixed", buf)
	}
}

func TestInputTextReadOnly(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	buf := "locked"
	io.AddMousePosEvent(10, 10)
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	frame(t, ctx, func() {
		ctx.InputText("name", &buf, 0, imui.InputTextFlagsReadOnly, nil)
	})

	io.AddInputCharacter('x')
	io.AddKeyEvent(imui.KeyBackspace, true)
	frame(t, ctx, func() {
		if ctx.InputText("name", &buf, 0, imui.InputTextFlagsReadOnly, nil) {
			t.Error("read-only field should never report changes")
		}
	})
	if buf != "locked" {
		t.Errorf("buf = %q, want locked", buf)
	}
}
