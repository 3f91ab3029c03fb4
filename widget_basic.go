package imui

// TreeNodeFlags configure CollapsingHeader behavior.
type TreeNodeFlags uint32

const (
	TreeNodeFlagsNone        TreeNodeFlags = 0
	TreeNodeFlagsDefaultOpen TreeNodeFlags = 1 << 0
	TreeNodeFlagsLeaf        TreeNodeFlags = 1 << 1 // No collapsing, no arrow
	TreeNodeFlagsBullet      TreeNodeFlags = 1 << 2 // Bullet marker instead of arrow
)

// Button draws a push button. Returns true on the frame it is
// clicked.
func (ctx *Context) Button(label string) bool {
	pos := ctx.itemPos()
	id := ctx.GetID(label)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.FramePadding*2,
		Y: textSize.Y + ctx.style.FramePadding*2,
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	hovered := ctx.registerHover(id, rect)
	if hovered && ctx.io.MouseClicked(MouseButtonLeft) {
		ctx.setActive(id)
	}
	held := ctx.isActive(id)
	clicked := held && hovered && ctx.io.MouseReleased(MouseButtonLeft)
	if ctx.io.MouseReleased(MouseButtonLeft) {
		ctx.clearActive(id)
	}

	bg := ctx.style.FrameColor
	if held && hovered {
		bg = ctx.style.FrameActiveColor
	} else if hovered {
		bg = ctx.style.FrameHoveredColor
	}
	ctx.drawList.AddRect(pos.X, pos.Y, size.X, size.Y, bg)
	if ctx.style.BorderSize > 0 {
		ctx.drawList.AddRectOutline(pos.X, pos.Y, size.X, size.Y,
			ctx.style.BorderSize, ctx.style.FrameBorderColor)
	}
	ctx.addText(pos.X+ctx.style.FramePadding, pos.Y+ctx.style.FramePadding,
		label, ctx.style.TextColor)

	ctx.advanceItem(pos, size)
	return clicked
}

// Checkbox draws a checkbox bound to v. Returns true on the frame
// the value is toggled.
func (ctx *Context) Checkbox(label string, v *bool) bool {
	pos := ctx.itemPos()
	id := ctx.GetID(label)

	box := ctx.frameHeight()
	labelSize := ctx.MeasureText(label)
	size := Vec2{X: box + ctx.style.InnerSpacing + labelSize.X, Y: box}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	hovered := ctx.registerHover(id, rect)
	changed := false
	if hovered && ctx.io.MouseClicked(MouseButtonLeft) {
		*v = !*v
		changed = true
	}

	bg := ctx.style.FrameColor
	if hovered {
		bg = ctx.style.FrameHoveredColor
	}
	ctx.drawList.AddRect(pos.X, pos.Y, box, box, bg)
	ctx.drawList.AddRectOutline(pos.X, pos.Y, box, box,
		ctx.style.BorderSize, ctx.style.FrameBorderColor)

	if *v {
		pad := box * 0.25
		ctx.drawList.AddRect(pos.X+pad, pos.Y+pad, box-pad*2, box-pad*2,
			ctx.style.CheckMarkColor)
	}

	textY := pos.Y + (box-ctx.lineHeight())*0.5
	ctx.addText(pos.X+box+ctx.style.InnerSpacing, textY, label, ctx.style.TextColor)

	ctx.advanceItem(pos, size)
	return changed
}

// RadioButton draws a radio button. The active parameter selects
// which option in a set is marked; returns true on the frame this
// option is clicked. The caller updates its selection index in
// response.
func (ctx *Context) RadioButton(label string, active bool) bool {
	pos := ctx.itemPos()
	id := ctx.GetID(label)

	box := ctx.frameHeight()
	labelSize := ctx.MeasureText(label)
	size := Vec2{X: box + ctx.style.InnerSpacing + labelSize.X, Y: box}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	hovered := ctx.registerHover(id, rect)
	clicked := hovered && ctx.io.MouseClicked(MouseButtonLeft)

	bg := ctx.style.FrameColor
	if hovered {
		bg = ctx.style.FrameHoveredColor
	}
	// Diamond stands in for a circle with the quad-only draw list
	cx := pos.X + box*0.5
	cy := pos.Y + box*0.5
	half := box * 0.5
	ctx.drawList.AddTriangle(cx, cy-half, cx+half, cy, cx, cy+half, bg)
	ctx.drawList.AddTriangle(cx, cy-half, cx, cy+half, cx-half, cy, bg)
	if active {
		inner := half * 0.45
		ctx.drawList.AddTriangle(cx, cy-inner, cx+inner, cy, cx, cy+inner,
			ctx.style.CheckMarkColor)
		ctx.drawList.AddTriangle(cx, cy-inner, cx, cy+inner, cx-inner, cy,
			ctx.style.CheckMarkColor)
	}

	textY := pos.Y + (box-ctx.lineHeight())*0.5
	ctx.addText(pos.X+box+ctx.style.InnerSpacing, textY, label, ctx.style.TextColor)

	ctx.advanceItem(pos, size)
	return clicked
}

// CollapsingHeader draws a full-width header that toggles open on
// click. Returns true while open; the caller draws the section
// contents only when it does. A non-nil visible pointer adds a close
// box; clicking it sets *visible to false. When *visible is already
// false the header is skipped entirely.
func (ctx *Context) CollapsingHeader(label string, visible *bool, flags TreeNodeFlags) bool {
	if visible != nil && !*visible {
		return false
	}

	pos := ctx.itemPos()
	id := ctx.GetID(label)

	state := GetState(ctx, id, TreeNodeState{Open: flags&TreeNodeFlagsDefaultOpen != 0})
	if flags&TreeNodeFlagsLeaf != 0 {
		state.Open = true
	}

	w := ctx.DisplaySize.X - pos.X - ctx.style.FramePadding
	if w < 1 {
		w = 1
	}
	h := ctx.frameHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	closeBox := float32(0)
	if visible != nil {
		closeBox = h
		rect.W -= closeBox
	}

	hovered := ctx.registerHover(id, rect)
	if flags&TreeNodeFlagsLeaf == 0 && hovered && ctx.io.MouseClicked(MouseButtonLeft) {
		state.Open = !state.Open
		SetState(ctx, id, state)
	}

	bg := ctx.style.HeaderColor
	if hovered {
		bg = ctx.style.HeaderHoveredColor
	}
	ctx.drawList.AddRect(pos.X, pos.Y, w, h, bg)

	// Arrow or bullet marker before the label
	markerX := pos.X + ctx.style.FramePadding
	textX := markerX + ctx.lineHeight() + ctx.style.InnerSpacing*0.5
	markerMid := pos.Y + h*0.5
	switch {
	case flags&TreeNodeFlagsBullet != 0:
		b := h * 0.2
		ctx.drawList.AddRect(markerX+b*0.5, markerMid-b*0.5, b, b, ctx.style.TextColor)
	case flags&TreeNodeFlagsLeaf != 0:
		// No marker
	case state.Open:
		s := h * 0.3
		ctx.drawList.AddTriangle(markerX, markerMid-s*0.5,
			markerX+s*2, markerMid-s*0.5,
			markerX+s, markerMid+s*0.5, ctx.style.TextColor)
	default:
		s := h * 0.3
		ctx.drawList.AddTriangle(markerX, markerMid-s,
			markerX+s, markerMid,
			markerX, markerMid+s, ctx.style.TextColor)
	}

	textY := pos.Y + (h-ctx.lineHeight())*0.5
	ctx.addText(textX, textY, label, ctx.style.TextColor)

	if visible != nil {
		bx := pos.X + w - closeBox
		closeRect := Rect{X: bx, Y: pos.Y, W: closeBox, H: h}
		closeID := ctx.GetID(label + "/close")
		closeHovered := ctx.registerHover(closeID, closeRect)
		if closeHovered && ctx.io.MouseClicked(MouseButtonLeft) {
			*visible = false
		}
		markColor := ctx.style.TextDisabledColor
		if closeHovered {
			markColor = ctx.style.TextColor
		}
		pad := h * 0.3
		ctx.drawList.AddLine(bx+pad, pos.Y+pad, bx+closeBox-pad, pos.Y+h-pad, 2, markColor)
		ctx.drawList.AddLine(bx+pad, pos.Y+h-pad, bx+closeBox-pad, pos.Y+pad, 2, markColor)
	}

	ctx.advanceItem(pos, Vec2{X: w, Y: h})
	return state.Open
}
