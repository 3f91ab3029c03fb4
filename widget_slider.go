package imui

import "strconv"

// SliderFloat draws a horizontal slider bound to v, clamped to
// [minVal, maxVal]. Returns true on frames where the value changed.
func (ctx *Context) SliderFloat(label string, v *float32, minVal, maxVal float32) bool {
	pos := ctx.itemPos()
	id := ctx.GetID(label)

	state := GetState(ctx, id, SliderState{})

	w := ctx.style.FrameWidth
	h := ctx.frameHeight()
	grabW := maxf(ctx.style.GrabMinSize, h*0.6)
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	hovered := ctx.registerHover(id, rect)
	if hovered && ctx.io.MouseClicked(MouseButtonLeft) {
		state.Dragging = true
		ctx.setActive(id)
	}

	changed := false
	if state.Dragging {
		if ctx.io.MouseDown(MouseButtonLeft) {
			relX := ctx.io.MouseX - pos.X - grabW*0.5
			ratio := clampf(relX/(w-grabW), 0, 1)
			next := minVal + ratio*(maxVal-minVal)
			if next != *v {
				*v = next
				changed = true
			}
		} else {
			state.Dragging = false
			ctx.clearActive(id)
		}
	}
	SetState(ctx, id, state)

	bg := ctx.style.FrameColor
	if state.Dragging {
		bg = ctx.style.FrameActiveColor
	} else if hovered {
		bg = ctx.style.FrameHoveredColor
	}
	ctx.drawList.AddRect(pos.X, pos.Y, w, h, bg)
	ctx.drawList.AddRectOutline(pos.X, pos.Y, w, h,
		ctx.style.BorderSize, ctx.style.FrameBorderColor)

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*v-minVal)/(maxVal-minVal), 0, 1)
	}
	grabX := pos.X + ratio*(w-grabW)
	grabColor := ctx.style.SliderGrabColor
	if state.Dragging {
		grabColor = ctx.style.SliderGrabActive
	}
	pad := ctx.style.BorderSize + 1
	ctx.drawList.AddRect(grabX+pad, pos.Y+pad, grabW-pad*2, h-pad*2, grabColor)

	valueText := formatFloat(*v)
	valueSize := ctx.MeasureText(valueText)
	ctx.addText(pos.X+(w-valueSize.X)*0.5, pos.Y+(h-valueSize.Y)*0.5,
		valueText, ctx.style.TextColor)

	size := ctx.labelAfterFrame(pos, w, h, label)
	ctx.advanceItem(pos, size)
	return changed
}

// DragFloat draws a value that adjusts by horizontal mouse drag.
// speed is the value change per pixel dragged. When minVal < maxVal
// the value is clamped to that range; equal bounds leave it
// unclamped. Returns true on frames where the value changed.
func (ctx *Context) DragFloat(label string, v *float32, speed, minVal, maxVal float32) bool {
	pos := ctx.itemPos()
	id := ctx.GetID(label)

	state := GetState(ctx, id, DragState{})

	w := ctx.style.FrameWidth
	h := ctx.frameHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	if speed == 0 {
		speed = 1
	}

	hovered := ctx.registerHover(id, rect)
	if hovered && ctx.io.MouseClicked(MouseButtonLeft) {
		state.Dragging = true
		state.DragStartX = ctx.io.MouseX
		state.DragStartValue = *v
		ctx.setActive(id)
	}

	changed := false
	if state.Dragging {
		if ctx.io.MouseDown(MouseButtonLeft) {
			next := state.DragStartValue + (ctx.io.MouseX-state.DragStartX)*speed
			if minVal < maxVal {
				next = clampf(next, minVal, maxVal)
			}
			if next != *v {
				*v = next
				changed = true
			}
		} else {
			state.Dragging = false
			ctx.clearActive(id)
		}
	}
	SetState(ctx, id, state)

	bg := ctx.style.FrameColor
	if state.Dragging {
		bg = ctx.style.FrameActiveColor
	} else if hovered {
		bg = ctx.style.FrameHoveredColor
	}
	ctx.drawList.AddRect(pos.X, pos.Y, w, h, bg)
	ctx.drawList.AddRectOutline(pos.X, pos.Y, w, h,
		ctx.style.BorderSize, ctx.style.FrameBorderColor)

	valueText := formatFloat(*v)
	valueSize := ctx.MeasureText(valueText)
	ctx.addText(pos.X+(w-valueSize.X)*0.5, pos.Y+(h-valueSize.Y)*0.5,
		valueText, ctx.style.TextColor)

	size := ctx.labelAfterFrame(pos, w, h, label)
	ctx.advanceItem(pos, size)
	return changed
}

// labelAfterFrame draws the widget label to the right of its frame
// and returns the item's total size.
func (ctx *Context) labelAfterFrame(pos Vec2, w, h float32, label string) Vec2 {
	size := Vec2{X: w, Y: h}
	if label == "" {
		return size
	}
	textY := pos.Y + (h-ctx.lineHeight())*0.5
	ctx.addText(pos.X+w+ctx.style.InnerSpacing, textY, label, ctx.style.TextColor)
	size.X += ctx.style.InnerSpacing + ctx.MeasureText(label).X
	return size
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 3, 32)
}
