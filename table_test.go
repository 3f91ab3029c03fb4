package imui_test

import (
	"testing"

	"github.com/immediate-mode/imui"
)

func TestBeginTableRejectsBadColumnCount(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	frame(t, ctx, func() {
		if ctx.BeginTable("bad", 0, imui.TableFlagsNone, imui.Vec2{}, 0) {
			t.Error("BeginTable with zero columns should return false")
		}
		if ctx.BeginTable("bad2", -3, imui.TableFlagsNone, imui.Vec2{}, 0) {
			t.Error("BeginTable with negative columns should return false")
		}
	})
}

func TestTableBasic(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	frame(t, ctx, func() {
		if !ctx.BeginTable("t", 3, imui.TableFlagsBorders, imui.Vec2{}, 0) {
			t.Fatal("BeginTable should succeed")
		}
		ctx.TableNextRow(imui.TableRowFlagsHeaders, 0)
		for _, h := range []string{"Name", "Type", "Size"} {
			if !ctx.TableNextColumn() {
				t.Fatal("header cell should be visible")
			}
			ctx.Text(h)
		}
		for row := 0; row < 3; row++ {
			ctx.TableNextRow(imui.TableRowFlagsNone, 0)
			for col := 0; col < 3; col++ {
				if !ctx.TableNextColumn() {
					t.Fatalf("cell (%d,%d) should be visible", row, col)
				}
				ctx.Text("cell")
			}
		}
		ctx.EndTable()
	})
}

func TestTableColumnsSplitWidthEvenly(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	style := imui.DefaultStyle()

	frame(t, ctx, func() {
		start := ctx.CursorPos()
		ctx.BeginTable("t", 2, imui.TableFlagsNone, imui.Vec2{X: 100}, 0)
		ctx.TableNextRow(imui.TableRowFlagsNone, 0)

		ctx.TableNextColumn()
		first := ctx.CursorPos().X
		if first != start.X+style.FramePadding {
			t.Errorf("first cell X = %v", first)
		}

		ctx.TableNextColumn()
		second := ctx.CursorPos().X
		if second != start.X+50+style.FramePadding {
			t.Errorf("second cell X = %v, want half the table over", second)
		}
		ctx.EndTable()
	})
}

func TestTableNextColumnWraps(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	frame(t, ctx, func() {
		ctx.BeginTable("t", 2, imui.TableFlagsNone, imui.Vec2{X: 100}, 0)
		ctx.TableNextRow(imui.TableRowFlagsNone, 0)

		ctx.TableNextColumn()
		firstRowY := ctx.CursorPos().Y
		ctx.TableNextColumn()

		// A third call with two columns wraps into an implicit new row.
		ctx.TableNextColumn()
		if ctx.CursorPos().Y <= firstRowY {
			t.Error("third cell should be on a new row")
		}
		ctx.EndTable()
	})
}

func TestTableRestoresLayout(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	frame(t, ctx, func() {
		start := ctx.CursorPos()
		ctx.BeginTable("t", 2, imui.TableFlagsNone, imui.Vec2{X: 100}, 0)
		ctx.TableNextRow(imui.TableRowFlagsNone, 0)
		ctx.TableNextColumn()
		ctx.Text("a")
		ctx.EndTable()

		after := ctx.CursorPos()
		if after.X != start.X {
			t.Errorf("cursor X = %v after table, want %v", after.X, start.X)
		}
		if after.Y <= start.Y {
			t.Error("cursor should advance below the table")
		}
	})
}

func TestTableFixedHeightClipsRows(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	frame(t, ctx, func() {
		// A table one row high cannot show its tenth row.
		ctx.BeginTable("t", 1, imui.TableFlagsNone, imui.Vec2{X: 100, Y: 25}, 0)
		visible := 0
		for row := 0; row < 10; row++ {
			ctx.TableNextRow(imui.TableRowFlagsNone, 0)
			if ctx.TableNextColumn() {
				visible++
			}
		}
		ctx.EndTable()

		if visible >= 10 {
			t.Error("rows past the fixed height should report not visible")
		}
		if visible == 0 {
			t.Error("the first row should be visible")
		}
	})
}

func TestTableSetColumnWidth(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	style := imui.DefaultStyle()

	frame(t, ctx, func() {
		ctx.BeginTable("t", 2, imui.TableFlagsNone, imui.Vec2{X: 100}, 0)
		ctx.EndTable()
		ctx.TableSetColumnWidth("t", 0, 30)
	})

	// The override takes effect on the next frame.
	frame(t, ctx, func() {
		start := ctx.CursorPos()
		ctx.BeginTable("t", 2, imui.TableFlagsNone, imui.Vec2{X: 100}, 0)
		ctx.TableNextRow(imui.TableRowFlagsNone, 0)
		ctx.TableNextColumn()
		ctx.TableNextColumn()
		if got := ctx.CursorPos().X; got != start.X+30+style.FramePadding {
			t.Errorf("second column X = %v, want %v", got, start.X+30+style.FramePadding)
		}
		ctx.EndTable()
	})
}

func TestTableCallsOutsideTableIgnored(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	frame(t, ctx, func() {
		before := ctx.CursorPos()
		ctx.TableNextRow(imui.TableRowFlagsNone, 0)
		if ctx.TableNextColumn() {
			t.Error("TableNextColumn outside a table should return false")
		}
		ctx.EndTable()
		if ctx.CursorPos() != before {
			t.Error("stray table calls should not move the cursor")
		}
	})
}
