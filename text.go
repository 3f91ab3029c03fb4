package imui

// Text draws a line of text. The string is drawn as given; compose
// it with fmt.Sprintf when formatting is needed.
func (ctx *Context) Text(text string) {
	ctx.textColored(ctx.style.TextColor, text)
}

// TextDisabled draws a line of text in the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.textColored(ctx.style.TextDisabledColor, text)
}

// TextColored draws a line of text with the given color components
// in the 0 to 1 range.
func (ctx *Context) TextColored(r, g, b, a float32, text string) {
	ctx.textColored(RGBAf(r, g, b, a), text)
}

// BulletText draws a small bullet marker followed by text.
func (ctx *Context) BulletText(text string) {
	pos := ctx.itemPos()
	lh := ctx.lineHeight()

	// Bullet is a small filled square centered on the line
	bulletSize := lh * 0.3
	bx := pos.X + (lh-bulletSize)*0.5
	by := pos.Y + (lh-bulletSize)*0.5
	ctx.drawList.AddRect(bx, by, bulletSize, bulletSize, ctx.style.TextColor)

	textX := pos.X + lh + ctx.style.InnerSpacing*0.5
	ctx.addText(textX, pos.Y, text, ctx.style.TextColor)

	size := ctx.MeasureText(text)
	ctx.advanceItem(pos, Vec2{X: textX - pos.X + size.X, Y: lh})
}

func (ctx *Context) textColored(color uint32, text string) {
	pos := ctx.itemPos()
	size := ctx.MeasureText(text)
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceItem(pos, size)
}
