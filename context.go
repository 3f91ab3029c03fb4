package imui

import (
	"io"
	"log/slog"
)

// Context holds all state for the GUI: per-frame layout and draw
// output, persistent widget state, and the two backends. It is the
// handle threaded through every call; there is no package-level
// context.
//
// This is NOT context.Context. A dedicated type avoids type assertions
// and map lookups on the hot path.
type Context struct {
	platform Platform
	renderer Renderer
	log      *slog.Logger
	shutdown bool

	// Drawing output
	drawList    *DrawList
	overlayList *DrawList // Popups, tooltips (drawn on top)
	drawData    DrawData

	// Styling
	style      Style
	styleStack []Style

	// Layout
	cursor     Vec2
	lineStartX float32 // X origin of the current line, for SameLine offsets
	prevItem   Rect    // Bounds of the most recent item
	groupStack []group

	// Input
	io InputState

	// Widget state (persisted between frames)
	stateStore StateStore

	// IDs
	idStack []ID

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Interaction tracking
	focusedID ID // Widget with keyboard focus (text editing)
	activeID  ID // Widget being interacted with (pressed, dragged)
	hoveredID ID // Widget under the mouse cursor

	// Tables
	tableStack []*tableDraw

	// Font texture (set by the renderer during Init)
	fontTexture uint32

	// Input capture flags, output from the GUI to the host. They tell
	// the host whether the GUI wants to consume this frame's input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// newContext creates a context with defaults. Backends and options are
// wired up by Init.
func newContext() *Context {
	return &Context{
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		style:      DefaultStyle(),
		styleStack: make([]Style, 0, 8),
		idStack:    make([]ID, 0, 32),
		groupStack: make([]group, 0, 8),
		stateStore: make(MapStateStore),
		DPIScale:   1.0,
	}
}

// IO returns the input state. Platform backends write events into it;
// hosts without a platform backend can feed it directly.
func (ctx *Context) IO() *InputState {
	return &ctx.io
}

// SetDisplaySize sets the logical display size for the current frame.
// Called by platform backends from NewFrame.
func (ctx *Context) SetDisplaySize(size Vec2) {
	ctx.DisplaySize = size
}

// SetDeltaTime sets the frame delta in seconds. Called by platform
// backends from NewFrame, before the core frame reset.
func (ctx *Context) SetDeltaTime(dt float32) {
	ctx.DeltaTime = dt
}

// SetFontTexture registers the renderer's font atlas texture.
// Called by renderer backends from Init.
func (ctx *Context) SetFontTexture(id uint32) {
	ctx.fontTexture = id
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style until PopStyle.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// resetFrame prepares per-frame layout state. Called from NewFrame
// after the backends have advanced.
func (ctx *Context) resetFrame() {
	ctx.FrameCount++
	ctx.cursor = Vec2{ctx.style.FramePadding, ctx.style.FramePadding}
	ctx.lineStartX = ctx.cursor.X
	ctx.prevItem = Rect{}
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.groupStack = ctx.groupStack[:0]
	ctx.tableStack = ctx.tableStack[:0]
	ctx.hoveredID = 0
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
}

// Interaction helpers shared by widgets.

func (ctx *Context) isHovered(rect Rect) bool {
	return rect.Contains(Vec2{ctx.io.MouseX, ctx.io.MouseY})
}

func (ctx *Context) isClicked(id ID, rect Rect) bool {
	hovered := ctx.isHovered(rect)
	clicked := ctx.io.MouseClicked(MouseButtonLeft)
	if clicked && hovered {
		ctx.log.Debug("click", "id", id, "rect", rect)
	}
	return hovered && clicked
}

func (ctx *Context) isPressed(rect Rect) bool {
	return ctx.isHovered(rect) && ctx.io.MouseDown(MouseButtonLeft)
}

// registerHover records hover state and raises WantCaptureMouse.
func (ctx *Context) registerHover(id ID, rect Rect) bool {
	if !ctx.isHovered(rect) {
		return false
	}
	ctx.hoveredID = id
	ctx.WantCaptureMouse = true
	return true
}

// SetFocused gives a widget keyboard focus. Pass 0 to clear.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused reports whether the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// setActive marks a widget as the one being interacted with. Only one
// widget may be active at a time; drags stay latched to it even when
// the mouse leaves its rect.
func (ctx *Context) setActive(id ID) {
	ctx.activeID = id
}

func (ctx *Context) isActive(id ID) bool {
	return id != 0 && ctx.activeID == id
}

func (ctx *Context) clearActive(id ID) {
	if ctx.activeID == id {
		ctx.activeID = 0
	}
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// frameHeight returns the height of a framed widget row (text plus
// frame padding).
func (ctx *Context) frameHeight() float32 {
	return ctx.lineHeight() + ctx.style.FramePadding*2
}

// MeasureText returns the rendered size of text with the built-in
// monospace font.
func (ctx *Context) MeasureText(text string) Vec2 {
	cw := ctx.style.CharWidth * ctx.style.FontScale
	ch := ctx.style.CharHeight * ctx.style.FontScale
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * cw, Y: ch}
}

// addText draws text with the font atlas texture bound.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.addTextTo(ctx.drawList, x, y, text, color)
}

func (ctx *Context) addTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	dl.SetTexture(ctx.fontTexture)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// itemPos returns the draw position for the next widget.
func (ctx *Context) itemPos() Vec2 {
	return ctx.cursor
}

// advanceItem records the item's bounds and moves the cursor to the
// next line. SameLine undoes the vertical advance.
func (ctx *Context) advanceItem(pos, size Vec2) {
	ctx.prevItem = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.cursor.X = ctx.lineStartX
	ctx.cursor.Y = pos.Y + size.Y + ctx.style.ItemSpacing

	if n := len(ctx.groupStack); n > 0 {
		g := &ctx.groupStack[n-1]
		g.maxX = maxf(g.maxX, pos.X+size.X)
		g.maxY = maxf(g.maxY, pos.Y+size.Y)
	}
}

// SetCursorPos sets the draw position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// CursorPos returns the current draw position.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor
}
