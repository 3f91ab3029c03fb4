package imui_test

import (
	"testing"

	"github.com/immediate-mode/imui"
)

func TestMouseButtonEdges(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	ctx.NewFrame()
	if !io.MouseClicked(imui.MouseButtonLeft) {
		t.Error("MouseClicked should be true on the press frame")
	}
	if !io.MouseDown(imui.MouseButtonLeft) {
		t.Error("MouseDown should be true on the press frame")
	}
	_ = ctx.Render()

	// Held, no new events: the edge clears, the level stays.
	ctx.NewFrame()
	if io.MouseClicked(imui.MouseButtonLeft) {
		t.Error("MouseClicked should clear after one frame")
	}
	if !io.MouseDown(imui.MouseButtonLeft) {
		t.Error("MouseDown should persist while held")
	}
	_ = ctx.Render()

	io.AddMouseButtonEvent(imui.MouseButtonLeft, false)
	ctx.NewFrame()
	if !io.MouseReleased(imui.MouseButtonLeft) {
		t.Error("MouseReleased should be true on the release frame")
	}
	if io.MouseDown(imui.MouseButtonLeft) {
		t.Error("MouseDown should be false after release")
	}
	_ = ctx.Render()

	ctx.NewFrame()
	if io.MouseReleased(imui.MouseButtonLeft) {
		t.Error("MouseReleased should clear after one frame")
	}
	_ = ctx.Render()
}

func TestMouseEventsApplyNextFrame(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	ctx.NewFrame()
	// The event lands mid-frame, after NewFrame already ran.
	io.AddMouseButtonEvent(imui.MouseButtonLeft, true)
	if io.MouseClicked(imui.MouseButtonLeft) {
		t.Error("queued event should not be visible in the current frame")
	}
	_ = ctx.Render()

	ctx.NewFrame()
	if !io.MouseClicked(imui.MouseButtonLeft) {
		t.Error("queued event should apply on the next frame")
	}
	_ = ctx.Render()
}

func TestMousePos(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.AddMousePosEvent(100, 50)
	io.AddMousePosEvent(120, 60)
	ctx.NewFrame()
	if io.MouseX != 120 || io.MouseY != 60 {
		t.Errorf("mouse pos = (%v, %v), want (120, 60)", io.MouseX, io.MouseY)
	}
	_ = ctx.Render()
}

func TestMouseWheelAccumulates(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.AddMouseWheelEvent(0, 1)
	io.AddMouseWheelEvent(0, 2)
	io.AddMouseWheelEvent(1, 0)
	ctx.NewFrame()
	if io.MouseWheelY != 3 {
		t.Errorf("MouseWheelY = %v, want 3", io.MouseWheelY)
	}
	if io.MouseWheelX != 1 {
		t.Errorf("MouseWheelX = %v, want 1", io.MouseWheelX)
	}
	_ = ctx.Render()

	// Wheel resets every frame.
	ctx.NewFrame()
	if io.MouseWheelY != 0 || io.MouseWheelX != 0 {
		t.Error("wheel deltas should reset on the next frame")
	}
	_ = ctx.Render()
}

func TestKeyEdges(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.AddKeyEvent(imui.KeyEnter, true)
	ctx.NewFrame()
	if !io.KeyPressed(imui.KeyEnter) {
		t.Error("KeyPressed should be true on the press frame")
	}
	if !io.KeyDown(imui.KeyEnter) {
		t.Error("KeyDown should be true on the press frame")
	}
	_ = ctx.Render()

	ctx.NewFrame()
	if io.KeyPressed(imui.KeyEnter) {
		t.Error("KeyPressed should clear after one frame")
	}
	if !io.KeyDown(imui.KeyEnter) {
		t.Error("KeyDown should persist while held")
	}
	_ = ctx.Render()

	io.AddKeyEvent(imui.KeyEnter, false)
	ctx.NewFrame()
	if !io.KeyReleased(imui.KeyEnter) {
		t.Error("KeyReleased should be true on the release frame")
	}
	_ = ctx.Render()
}

func TestKeyRepeat(t *testing.T) {
	ctx, platform, _ := newTestContext(t)
	io := ctx.IO()

	io.AddKeyEvent(imui.KeyBackspace, true)
	ctx.NewFrame()
	if !io.KeyRepeated(imui.KeyBackspace) {
		t.Error("KeyRepeated should fire on the initial press")
	}
	_ = ctx.Render()

	// Held but still inside the repeat delay.
	ctx.NewFrame()
	if io.KeyRepeated(imui.KeyBackspace) {
		t.Error("KeyRepeated should not fire before the repeat delay")
	}
	_ = ctx.Render()

	// One long frame lands the hold time just past the delay plus
	// one repeat interval.
	platform.deltaTime = 0.419
	ctx.NewFrame()
	if !io.KeyRepeated(imui.KeyBackspace) {
		t.Error("KeyRepeated should fire after the repeat delay")
	}
	_ = ctx.Render()
}

func TestInputChars(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.AddInputCharacter('H')
	io.AddInputCharacter('i')
	ctx.NewFrame()
	if !io.HasInputChars() {
		t.Fatal("expected input characters")
	}
	if string(io.InputChars) != "Hi" {
		t.Errorf("InputChars = %q, want Hi", string(io.InputChars))
	}
	io.ConsumeInputChars()
	if io.HasInputChars() {
		t.Error("ConsumeInputChars should clear the buffer")
	}
	_ = ctx.Render()

	ctx.NewFrame()
	if io.HasInputChars() {
		t.Error("characters should not leak into the next frame")
	}
	_ = ctx.Render()
}

func TestOutOfRangeInputIgnored(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.AddMouseButtonEvent(imui.MouseButton(-1), true)
	io.AddMouseButtonEvent(imui.MouseButtonCount, true)
	io.AddKeyEvent(imui.KeyNone, true)
	io.AddKeyEvent(imui.KeyCount, true)
	ctx.NewFrame()

	for b := imui.MouseButtonLeft; b < imui.MouseButtonCount; b++ {
		if io.MouseDown(b) {
			t.Errorf("button %d down from out-of-range event", b)
		}
	}
	if io.MouseDown(imui.MouseButton(-1)) || io.KeyDown(imui.Key(-1)) {
		t.Error("out-of-range queries should return false")
	}
	_ = ctx.Render()
}

func TestSetModifiers(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	io := ctx.IO()

	io.SetModifiers(true, true, false, false)
	if !io.ModCtrl || !io.ModShift || io.ModAlt || io.ModSuper {
		t.Error("SetModifiers did not apply")
	}

	// Modifiers are level state, not cleared by the frame reset.
	ctx.NewFrame()
	if !io.ModCtrl {
		t.Error("modifiers should survive NewFrame")
	}
	_ = ctx.Render()
}
