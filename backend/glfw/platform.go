// Package glfw binds a GLFW window to imui: input events, frame
// timing, display size and the system clipboard. It is the stock
// Platform implementation.
package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/immediate-mode/imui"
)

// Platform implements imui.Platform for a GLFW window.
type Platform struct {
	window   *glfw.Window
	ctx      *imui.Context
	install  bool
	lastTime float64
}

// NewPlatform wraps an existing window. With installCallbacks the
// platform registers its own GLFW callbacks on Init; hosts that need
// their own callbacks pass false and chain to the exported
// *Callback methods instead.
func NewPlatform(window *glfw.Window, installCallbacks bool) *Platform {
	return &Platform{window: window, install: installCallbacks}
}

// Init is called from imui.Init.
func (p *Platform) Init(ctx *imui.Context) error {
	if err := imui.AssertVersion("glfw", imui.Version); err != nil {
		return err
	}
	if p.window == nil {
		return errors.New("glfw: nil window")
	}
	p.ctx = ctx
	p.lastTime = glfw.GetTime()

	if p.install {
		p.window.SetMouseButtonCallback(p.MouseButtonCallback)
		p.window.SetCursorPosCallback(p.CursorPosCallback)
		p.window.SetKeyCallback(p.KeyCallback)
		p.window.SetScrollCallback(p.ScrollCallback)
		p.window.SetCharCallback(p.CharCallback)
	}
	return nil
}

// NewFrame refreshes display size and delta time. Called from
// Context.NewFrame, after the renderer's NewFrame.
func (p *Platform) NewFrame(ctx *imui.Context) {
	w, h := p.window.GetSize()
	ctx.SetDisplaySize(imui.Vec2{X: float32(w), Y: float32(h)})

	now := glfw.GetTime()
	dt := float32(now - p.lastTime)
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	p.lastTime = now
	ctx.SetDeltaTime(dt)
}

// Shutdown is called from Context.Shutdown. The window is owned by
// the host, so nothing is destroyed here.
func (p *Platform) Shutdown() {
	p.ctx = nil
}

// ClipboardText returns the system clipboard contents.
func (p *Platform) ClipboardText() string {
	return p.window.GetClipboardString()
}

// SetClipboardText stores text in the system clipboard.
func (p *Platform) SetClipboardText(text string) {
	p.window.SetClipboardString(text)
}

// MouseButtonCallback forwards a GLFW mouse button event. Installed
// automatically when the platform was created with installCallbacks;
// otherwise call it from the host's own callback.
func (p *Platform) MouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if p.ctx == nil {
		return
	}
	b := mouseButtonFor(button)
	if b < 0 {
		return
	}
	p.applyMods(mods)
	switch action {
	case glfw.Press:
		p.ctx.IO().AddMouseButtonEvent(b, true)
	case glfw.Release:
		p.ctx.IO().AddMouseButtonEvent(b, false)
	}
}

// CursorPosCallback forwards a GLFW cursor move event.
func (p *Platform) CursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if p.ctx == nil {
		return
	}
	p.ctx.IO().AddMousePosEvent(float32(xpos), float32(ypos))
}

// KeyCallback forwards a GLFW key event.
func (p *Platform) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if p.ctx == nil {
		return
	}
	p.applyMods(mods)
	k := keyFor(key)
	if k == imui.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		p.ctx.IO().AddKeyEvent(k, true)
	case glfw.Release:
		p.ctx.IO().AddKeyEvent(k, false)
	}
}

// ScrollCallback forwards a GLFW scroll event.
func (p *Platform) ScrollCallback(w *glfw.Window, xoff, yoff float64) {
	if p.ctx == nil {
		return
	}
	p.ctx.IO().AddMouseWheelEvent(float32(xoff), float32(yoff))
}

// CharCallback forwards a GLFW character event.
func (p *Platform) CharCallback(w *glfw.Window, char rune) {
	if p.ctx == nil {
		return
	}
	p.ctx.IO().AddInputCharacter(char)
}

func (p *Platform) applyMods(mods glfw.ModifierKey) {
	p.ctx.IO().SetModifiers(
		mods&glfw.ModControl != 0,
		mods&glfw.ModShift != 0,
		mods&glfw.ModAlt != 0,
		mods&glfw.ModSuper != 0,
	)
}

func mouseButtonFor(button glfw.MouseButton) imui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imui.MouseButtonMiddle
	default:
		return -1
	}
}

func keyFor(key glfw.Key) imui.Key {
	switch key {
	case glfw.KeyTab:
		return imui.KeyTab
	case glfw.KeyLeft:
		return imui.KeyLeft
	case glfw.KeyRight:
		return imui.KeyRight
	case glfw.KeyUp:
		return imui.KeyUp
	case glfw.KeyDown:
		return imui.KeyDown
	case glfw.KeyPageUp:
		return imui.KeyPageUp
	case glfw.KeyPageDown:
		return imui.KeyPageDown
	case glfw.KeyHome:
		return imui.KeyHome
	case glfw.KeyEnd:
		return imui.KeyEnd
	case glfw.KeyInsert:
		return imui.KeyInsert
	case glfw.KeyDelete:
		return imui.KeyDelete
	case glfw.KeyBackspace:
		return imui.KeyBackspace
	case glfw.KeySpace:
		return imui.KeySpace
	case glfw.KeyEnter:
		return imui.KeyEnter
	case glfw.KeyEscape:
		return imui.KeyEscape
	case glfw.KeyA:
		return imui.KeyA
	case glfw.KeyC:
		return imui.KeyC
	case glfw.KeyV:
		return imui.KeyV
	case glfw.KeyX:
		return imui.KeyX
	case glfw.KeyY:
		return imui.KeyY
	case glfw.KeyZ:
		return imui.KeyZ
	case glfw.KeyF1:
		return imui.KeyF1
	case glfw.KeyF2:
		return imui.KeyF2
	case glfw.KeyF3:
		return imui.KeyF3
	case glfw.KeyF4:
		return imui.KeyF4
	case glfw.KeyF5:
		return imui.KeyF5
	case glfw.KeyF6:
		return imui.KeyF6
	case glfw.KeyF7:
		return imui.KeyF7
	case glfw.KeyF8:
		return imui.KeyF8
	case glfw.KeyF9:
		return imui.KeyF9
	case glfw.KeyF10:
		return imui.KeyF10
	case glfw.KeyF11:
		return imui.KeyF11
	case glfw.KeyF12:
		return imui.KeyF12
	default:
		return imui.KeyNone
	}
}
