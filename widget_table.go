package imui

// TableFlags control table appearance.
type TableFlags uint32

const (
	TableFlagsNone TableFlags = 0

	// Borders
	TableFlagsBordersInnerH TableFlags = 1 << 0
	TableFlagsBordersInnerV TableFlags = 1 << 1
	TableFlagsBordersOuterH TableFlags = 1 << 2
	TableFlagsBordersOuterV TableFlags = 1 << 3

	TableFlagsBordersInner TableFlags = TableFlagsBordersInnerH | TableFlagsBordersInnerV
	TableFlagsBordersOuter TableFlags = TableFlagsBordersOuterH | TableFlagsBordersOuterV
	TableFlagsBorders      TableFlags = TableFlagsBordersInner | TableFlagsBordersOuter

	// Alternate row background colors
	TableFlagsRowBg TableFlags = 1 << 4
)

// TableRowFlags modify a single row.
type TableRowFlags uint32

const (
	TableRowFlagsNone    TableRowFlags = 0
	TableRowFlagsHeaders TableRowFlags = 1 << 0 // Header styling
)

// tableDraw is the in-progress state of one table between BeginTable
// and EndTable. Tables nest; the context keeps a stack of them.
type tableDraw struct {
	id          ID
	flags       TableFlags
	columnCount int

	outer     Rect // Visible table rect
	colWidths []float32

	curRow   int
	curCol   int
	rowY     float32
	rowH     float32
	rowFlags TableRowFlags

	// Cursor state to restore at EndTable
	savedCursor     Vec2
	savedLineStartX float32
	clipped         bool
}

// BeginTable opens a table with the given column count. Each call
// returning true must be matched by EndTable. outerSize fixes the
// table's size; zero components size to the remaining content area.
// innerWidth > 0 widens the cell area beyond the visible rect.
// Returns false, with no EndTable expected, when columnCount is not
// positive or the table rect is degenerate.
func (ctx *Context) BeginTable(name string, columnCount int, flags TableFlags, outerSize Vec2, innerWidth float32) bool {
	if columnCount <= 0 {
		ctx.log.Warn("BeginTable with non-positive column count", "table", name, "columns", columnCount)
		return false
	}

	pos := ctx.itemPos()
	id := ctx.GetID(name)

	w := outerSize.X
	if w <= 0 {
		w = ctx.DisplaySize.X - pos.X - ctx.style.FramePadding
	}
	h := outerSize.Y
	if w < 1 {
		return false
	}

	contentW := w
	if innerWidth > 0 {
		contentW = innerWidth
	}

	state := GetState(ctx, id, TableState{})
	if len(state.ColumnWidths) != columnCount {
		state.ColumnWidths = make([]float32, columnCount)
		each := contentW / float32(columnCount)
		for i := range state.ColumnWidths {
			state.ColumnWidths[i] = each
		}
		SetState(ctx, id, state)
	}

	t := &tableDraw{
		id:              id,
		flags:           flags,
		columnCount:     columnCount,
		outer:           Rect{X: pos.X, Y: pos.Y, W: w, H: h},
		colWidths:       state.ColumnWidths,
		curRow:          -1,
		curCol:          -1,
		rowY:            pos.Y,
		savedCursor:     ctx.cursor,
		savedLineStartX: ctx.lineStartX,
	}

	if h > 0 {
		t.clipped = true
		ctx.drawList.PushClipRect(t.outer)
	}

	ctx.tableStack = append(ctx.tableStack, t)
	return true
}

// TableNextRow starts a new row. minHeight raises the row height
// above the default single-line height.
func (ctx *Context) TableNextRow(rowFlags TableRowFlags, minHeight float32) {
	t := ctx.currentTable()
	if t == nil {
		ctx.log.Warn("TableNextRow outside BeginTable/EndTable")
		return
	}
	t.beginRow(ctx, rowFlags, minHeight)
}

func (t *tableDraw) beginRow(ctx *Context, rowFlags TableRowFlags, minHeight float32) {
	if t.curRow >= 0 {
		t.rowY += t.rowH
	}
	t.curRow++
	t.curCol = -1
	t.rowFlags = rowFlags
	t.rowH = maxf(ctx.frameHeight(), minHeight)

	if rowFlags&TableRowFlagsHeaders != 0 {
		ctx.drawList.AddRect(t.outer.X, t.rowY, t.outer.W, t.rowH, ctx.style.HeaderColor)
	} else if t.flags&TableFlagsRowBg != 0 && t.curRow%2 == 1 {
		ctx.drawList.AddRect(t.outer.X, t.rowY, t.outer.W, t.rowH, ctx.style.RowBgAltColor)
	}

	if t.flags&TableFlagsBordersInnerH != 0 && t.curRow > 0 {
		ctx.drawList.AddLine(t.outer.X, t.rowY, t.outer.X+t.outer.W, t.rowY,
			ctx.style.BorderSize, ctx.style.BorderColor)
	}
}

// TableNextColumn advances to the next cell, wrapping into a new row
// past the last column, and positions the cursor inside it. Returns
// false when the cell is outside the table's visible rect so the
// caller can skip drawing its contents.
func (ctx *Context) TableNextColumn() bool {
	t := ctx.currentTable()
	if t == nil {
		ctx.log.Warn("TableNextColumn outside BeginTable/EndTable")
		return false
	}

	t.curCol++
	if t.curCol >= t.columnCount || t.curRow < 0 {
		t.beginRow(ctx, TableRowFlagsNone, 0)
		t.curCol = 0
	}

	x := t.outer.X
	for i := 0; i < t.curCol; i++ {
		x += t.colWidths[i]
	}

	if t.flags&TableFlagsBordersInnerV != 0 && t.curCol > 0 {
		ctx.drawList.AddLine(x, t.rowY, x, t.rowY+t.rowH,
			ctx.style.BorderSize, ctx.style.BorderColor)
	}

	ctx.cursor = Vec2{X: x + ctx.style.FramePadding, Y: t.rowY + ctx.style.FramePadding*0.5}
	ctx.lineStartX = ctx.cursor.X

	if t.outer.H > 0 && t.rowY >= t.outer.Y+t.outer.H {
		return false
	}
	return true
}

// EndTable closes the innermost table, draws its outer borders, and
// resumes normal layout below it.
func (ctx *Context) EndTable() {
	n := len(ctx.tableStack)
	if n == 0 {
		ctx.log.Warn("EndTable without matching BeginTable")
		return
	}
	t := ctx.tableStack[n-1]
	ctx.tableStack = ctx.tableStack[:n-1]

	if t.clipped {
		ctx.drawList.PopClipRect()
	}

	height := t.outer.H
	if height <= 0 {
		height = t.rowY + t.rowH - t.outer.Y
	}

	if t.flags&TableFlagsBordersOuterH != 0 {
		ctx.drawList.AddLine(t.outer.X, t.outer.Y, t.outer.X+t.outer.W, t.outer.Y,
			ctx.style.BorderSize, ctx.style.BorderColor)
		ctx.drawList.AddLine(t.outer.X, t.outer.Y+height, t.outer.X+t.outer.W, t.outer.Y+height,
			ctx.style.BorderSize, ctx.style.BorderColor)
	}
	if t.flags&TableFlagsBordersOuterV != 0 {
		ctx.drawList.AddLine(t.outer.X, t.outer.Y, t.outer.X, t.outer.Y+height,
			ctx.style.BorderSize, ctx.style.BorderColor)
		ctx.drawList.AddLine(t.outer.X+t.outer.W, t.outer.Y, t.outer.X+t.outer.W, t.outer.Y+height,
			ctx.style.BorderSize, ctx.style.BorderColor)
	}

	ctx.cursor = t.savedCursor
	ctx.lineStartX = t.savedLineStartX
	ctx.advanceItem(Vec2{X: t.outer.X, Y: t.outer.Y}, Vec2{X: t.outer.W, Y: height})
}

// TableSetColumnWidth overrides a column width for a table opened
// with the given name. Takes effect on the next frame.
func (ctx *Context) TableSetColumnWidth(name string, column int, width float32) {
	id := ctx.GetID(name)
	state := GetState(ctx, id, TableState{})
	if column < 0 || column >= len(state.ColumnWidths) || width <= 0 {
		return
	}
	state.ColumnWidths[column] = width
	SetState(ctx, id, state)
}

func (ctx *Context) currentTable() *tableDraw {
	if n := len(ctx.tableStack); n > 0 {
		return ctx.tableStack[n-1]
	}
	return nil
}
