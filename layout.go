package imui

// group captures the cursor at BeginGroup and accumulates the bounds
// of items placed until EndGroup, so the whole block can act as a
// single item for SameLine.
type group struct {
	startPos   Vec2
	lineStartX float32
	maxX, maxY float32
}

// BeginGroup locks the horizontal starting position and begins
// treating subsequent widgets as one block. Close with EndGroup.
func (ctx *Context) BeginGroup() {
	ctx.groupStack = append(ctx.groupStack, group{
		startPos:   ctx.cursor,
		lineStartX: ctx.lineStartX,
		maxX:       ctx.cursor.X,
		maxY:       ctx.cursor.Y,
	})
	ctx.lineStartX = ctx.cursor.X
}

// EndGroup closes the innermost group. The group's bounding box
// becomes the previous item, so SameLine after EndGroup lays out
// beside the whole block.
func (ctx *Context) EndGroup() {
	n := len(ctx.groupStack)
	if n == 0 {
		ctx.log.Warn("EndGroup without matching BeginGroup")
		return
	}
	g := ctx.groupStack[n-1]
	ctx.groupStack = ctx.groupStack[:n-1]
	ctx.lineStartX = g.lineStartX

	size := Vec2{X: g.maxX - g.startPos.X, Y: g.maxY - g.startPos.Y}
	ctx.advanceItem(g.startPos, size)
}

// SameLine keeps the next widget on the same line as the previous
// one. With offset > 0 the next widget starts at that distance from
// the line origin; otherwise it follows the previous item, separated
// by spacing (negative spacing selects the style default).
func (ctx *Context) SameLine(offset, spacing float32) {
	if ctx.prevItem.W == 0 && ctx.prevItem.H == 0 {
		return
	}
	if offset > 0 {
		if spacing < 0 {
			spacing = 0
		}
		ctx.cursor.X = ctx.lineStartX + offset + spacing
	} else {
		if spacing < 0 {
			spacing = ctx.style.ItemSpacing
		}
		ctx.cursor.X = ctx.prevItem.X + ctx.prevItem.W + spacing
	}
	ctx.cursor.Y = ctx.prevItem.Y
}

// NewLine moves the cursor to the next line, leaving an empty row.
func (ctx *Context) NewLine() {
	pos := ctx.cursor
	ctx.advanceItem(pos, Vec2{X: 0, Y: ctx.lineHeight()})
}

// Spacing adds a small vertical gap.
func (ctx *Context) Spacing() {
	ctx.cursor.Y += ctx.style.ItemSpacing
}

// Separator draws a horizontal line across the content width.
func (ctx *Context) Separator() {
	pos := ctx.itemPos()
	w := ctx.DisplaySize.X - pos.X - ctx.style.FramePadding
	if w < 1 {
		w = 1
	}
	y := pos.Y + ctx.style.ItemSpacing*0.5
	ctx.drawList.AddLine(pos.X, y, pos.X+w, y, ctx.style.BorderSize, ctx.style.SeparatorColor)
	ctx.advanceItem(pos, Vec2{X: w, Y: ctx.style.ItemSpacing})
}

// Indent shifts the line origin right by the style indent width.
func (ctx *Context) Indent() {
	ctx.lineStartX += ctx.style.IndentWidth
	ctx.cursor.X = ctx.lineStartX
}

// Unindent shifts the line origin back left.
func (ctx *Context) Unindent() {
	ctx.lineStartX -= ctx.style.IndentWidth
	ctx.cursor.X = ctx.lineStartX
}
