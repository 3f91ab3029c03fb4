package imui

import "strings"

// InputTextFlags configure text input behavior.
type InputTextFlags uint32

const (
	InputTextFlagsNone             InputTextFlags = 0
	InputTextFlagsCharsDecimal     InputTextFlags = 1 << 0 // 0-9 . + - e E
	InputTextFlagsCharsHexadecimal InputTextFlags = 1 << 1 // 0-9 a-f A-F
	InputTextFlagsCharsUppercase   InputTextFlags = 1 << 2 // Force a-z to A-Z
	InputTextFlagsCharsNoBlank     InputTextFlags = 1 << 3 // Reject space and tab
	InputTextFlagsAutoSelectAll    InputTextFlags = 1 << 4 // Select everything on focus
	InputTextFlagsEnterReturnsTrue InputTextFlags = 1 << 5 // Return true on Enter, not on edits
	InputTextFlagsReadOnly         InputTextFlags = 1 << 6
	InputTextFlagsPassword         InputTextFlags = 1 << 7 // Display as asterisks
)

// InputTextCallbackData is passed to an InputTextCallback after the
// buffer changed. The callback may rewrite Buf and CursorPos.
type InputTextCallbackData struct {
	Flags     InputTextFlags
	Buf       string
	CursorPos int
}

// InputTextCallback observes and optionally rewrites edits.
type InputTextCallback func(*InputTextCallbackData)

// InputText draws a single-line text field editing buf in place.
// capacity bounds the text length in runes; zero means unbounded.
// Without EnterReturnsTrue the return value is true on frames where
// the buffer changed; with it, only on the frame Enter is pressed.
func (ctx *Context) InputText(label string, buf *string, capacity int, flags InputTextFlags, cb InputTextCallback) bool {
	return ctx.inputTextEx(label, "", buf, capacity, flags, cb)
}

// InputTextWithHint is InputText with placeholder text shown while
// the buffer is empty and the field is not being edited.
func (ctx *Context) InputTextWithHint(label, hint string, buf *string, capacity int, flags InputTextFlags, cb InputTextCallback) bool {
	return ctx.inputTextEx(label, hint, buf, capacity, flags, cb)
}

func (ctx *Context) inputTextEx(label, hint string, buf *string, capacity int, flags InputTextFlags, cb InputTextCallback) bool {
	pos := ctx.itemPos()
	id := ctx.GetID(label)

	state := GetState(ctx, id, InputTextState{
		CursorPos:      len([]rune(*buf)),
		SelectionStart: -1,
		SelectionEnd:   -1,
	})

	w := ctx.style.FrameWidth
	h := ctx.frameHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	hovered := ctx.registerHover(id, rect)

	runes := []rune(*buf)
	textLen := len(runes)
	if state.CursorPos > textLen {
		state.CursorPos = textLen
	}
	if state.CursorPos < 0 {
		state.CursorPos = 0
	}

	// Click focuses the field and places the cursor
	if hovered && ctx.io.MouseClicked(MouseButtonLeft) {
		if !state.Editing {
			state.Editing = true
			state.CursorBlinkTime = 0
			ctx.SetFocused(id)
			if flags&InputTextFlagsAutoSelectAll != 0 {
				state.SelectAll(textLen)
			}
		}
		if !state.HasSelection() {
			state.CursorPos = ctx.runeIndexAtX(runes, ctx.io.MouseX-pos.X-ctx.style.FramePadding+state.ScrollOffset)
			state.ClearSelection()
		}
	}
	// Clicking elsewhere drops focus
	if state.Editing && !hovered && ctx.io.MouseClicked(MouseButtonLeft) {
		state.Editing = false
		ctx.SetFocused(0)
	}
	if state.Editing && !ctx.IsFocused(id) {
		state.Editing = false
	}

	changed := false
	enterPressed := false
	if state.Editing && flags&InputTextFlagsReadOnly == 0 {
		ctx.WantCaptureKeyboard = true
		changed, enterPressed = ctx.editText(buf, &runes, &state, capacity, flags)
		textLen = len(runes)
	}

	if changed && cb != nil {
		data := InputTextCallbackData{Flags: flags, Buf: *buf, CursorPos: state.CursorPos}
		cb(&data)
		if data.Buf != *buf {
			*buf = data.Buf
			runes = []rune(*buf)
			textLen = len(runes)
		}
		state.CursorPos = clampi(data.CursorPos, 0, textLen)
	}

	display := *buf
	if flags&InputTextFlagsPassword != 0 {
		display = strings.Repeat("*", textLen)
	}

	bg := ctx.style.InputBgColor
	if state.Editing {
		bg = ctx.style.InputFocusedBgColor
	}
	ctx.drawList.AddRect(pos.X, pos.Y, w, h, bg)
	ctx.drawList.AddRectOutline(pos.X, pos.Y, w, h,
		ctx.style.BorderSize, ctx.style.FrameBorderColor)

	textX := pos.X + ctx.style.FramePadding
	textY := pos.Y + (h-ctx.lineHeight())*0.5
	innerW := w - ctx.style.FramePadding*2

	// Keep the cursor visible in a field narrower than its text
	cursorX := ctx.MeasureText(string(runes[:state.CursorPos])).X
	if cursorX-state.ScrollOffset > innerW {
		state.ScrollOffset = cursorX - innerW + ctx.style.CharWidth
	}
	if cursorX < state.ScrollOffset {
		state.ScrollOffset = cursorX
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}

	ctx.drawList.PushClipRect(Rect{X: textX, Y: pos.Y, W: innerW, H: h})

	if state.Editing && state.HasSelection() {
		selStart, selEnd := state.SelectedRange()
		x0 := ctx.MeasureText(string(runes[:selStart])).X - state.ScrollOffset
		x1 := ctx.MeasureText(string(runes[:selEnd])).X - state.ScrollOffset
		ctx.drawList.AddRect(textX+x0, pos.Y+2, x1-x0, h-4, ctx.style.SelectionBgColor)
	}

	if display == "" && hint != "" && !state.Editing {
		ctx.addText(textX, textY, hint, ctx.style.HintColor)
	} else {
		ctx.addText(textX-state.ScrollOffset, textY, display, ctx.style.TextColor)
	}

	ctx.drawList.PopClipRect()

	if state.Editing {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			cx := textX + cursorX - state.ScrollOffset
			ctx.drawList.AddLine(cx, pos.Y+2, cx, pos.Y+h-2, 1, ctx.style.CursorColor)
		}
	}

	SetState(ctx, id, state)

	size := ctx.labelAfterFrame(pos, w, h, label)
	ctx.advanceItem(pos, size)

	if flags&InputTextFlagsEnterReturnsTrue != 0 {
		return enterPressed
	}
	return changed
}

// editText applies this frame's keyboard input to the buffer.
// Returns whether the buffer changed and whether Enter was pressed.
func (ctx *Context) editText(buf *string, runes *[]rune, state *InputTextState, capacity int, flags InputTextFlags) (changed, enterPressed bool) {
	in := &ctx.io

	commit := func() {
		*buf = string(*runes)
		changed = true
		state.CursorBlinkTime = 0
	}

	deleteSelection := func() {
		if !state.HasSelection() {
			return
		}
		start, end := state.SelectedRange()
		*runes = append((*runes)[:start], (*runes)[end:]...)
		state.CursorPos = start
		state.ClearSelection()
		commit()
	}

	moveCursor := func(to int) {
		to = clampi(to, 0, len(*runes))
		if in.ModShift {
			if state.SelectionStart < 0 {
				state.SelectionStart = state.CursorPos
			}
			state.SelectionEnd = to
		} else {
			state.ClearSelection()
		}
		state.CursorPos = to
		state.CursorBlinkTime = 0
	}

	if in.ModCtrl && in.KeyPressed(KeyA) {
		state.SelectAll(len(*runes))
		return
	}
	if in.ModCtrl && in.KeyPressed(KeyC) {
		if start, end := state.SelectedRange(); start >= 0 {
			ctx.platform.SetClipboardText(string((*runes)[start:end]))
		}
		return
	}
	if in.ModCtrl && in.KeyPressed(KeyX) {
		if start, end := state.SelectedRange(); start >= 0 {
			ctx.platform.SetClipboardText(string((*runes)[start:end]))
			deleteSelection()
		}
		return
	}
	if in.ModCtrl && in.KeyPressed(KeyV) {
		paste := []rune(ctx.platform.ClipboardText())
		if len(paste) > 0 {
			deleteSelection()
			if capacity > 0 {
				room := capacity - len(*runes)
				if room < 0 {
					room = 0
				}
				if len(paste) > room {
					paste = paste[:room]
				}
			}
			filtered := paste[:0]
			for _, ch := range paste {
				if ch, ok := filterChar(ch, flags); ok {
					filtered = append(filtered, ch)
				}
			}
			if len(filtered) > 0 {
				*runes = append((*runes)[:state.CursorPos],
					append(append([]rune{}, filtered...), (*runes)[state.CursorPos:]...)...)
				state.CursorPos += len(filtered)
				commit()
			}
		}
		return
	}

	if in.KeyRepeated(KeyLeft) {
		to := state.CursorPos - 1
		if in.ModCtrl {
			to = wordBoundaryLeft(*runes, state.CursorPos)
		}
		moveCursor(to)
	}
	if in.KeyRepeated(KeyRight) {
		to := state.CursorPos + 1
		if in.ModCtrl {
			to = wordBoundaryRight(*runes, state.CursorPos)
		}
		moveCursor(to)
	}
	if in.KeyPressed(KeyHome) {
		moveCursor(0)
	}
	if in.KeyPressed(KeyEnd) {
		moveCursor(len(*runes))
	}

	if in.KeyRepeated(KeyBackspace) {
		if state.HasSelection() {
			deleteSelection()
		} else if state.CursorPos > 0 {
			*runes = append((*runes)[:state.CursorPos-1], (*runes)[state.CursorPos:]...)
			state.CursorPos--
			commit()
		}
	}
	if in.KeyRepeated(KeyDelete) {
		if state.HasSelection() {
			deleteSelection()
		} else if state.CursorPos < len(*runes) {
			*runes = append((*runes)[:state.CursorPos], (*runes)[state.CursorPos+1:]...)
			commit()
		}
	}

	if in.KeyPressed(KeyEscape) {
		state.Editing = false
		ctx.SetFocused(0)
		return
	}
	if in.KeyPressed(KeyEnter) {
		enterPressed = true
		state.Editing = false
		ctx.SetFocused(0)
		return
	}

	for _, ch := range in.InputChars {
		ch, ok := filterChar(ch, flags)
		if !ok {
			continue
		}
		deleteSelection()
		if capacity > 0 && len(*runes) >= capacity {
			continue
		}
		*runes = append((*runes)[:state.CursorPos],
			append([]rune{ch}, (*runes)[state.CursorPos:]...)...)
		state.CursorPos++
		commit()
	}
	return
}

// filterChar applies the character class flags. Returns the possibly
// transformed rune and whether it is accepted.
func filterChar(ch rune, flags InputTextFlags) (rune, bool) {
	if ch < 32 {
		return ch, false
	}
	if flags&InputTextFlagsCharsUppercase != 0 && ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if flags&InputTextFlagsCharsNoBlank != 0 && (ch == ' ' || ch == '\t') {
		return ch, false
	}
	if flags&InputTextFlagsCharsDecimal != 0 {
		if !strings.ContainsRune("0123456789.+-eE", ch) {
			return ch, false
		}
	}
	if flags&InputTextFlagsCharsHexadecimal != 0 {
		if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
			return ch, false
		}
	}
	return ch, true
}

// runeIndexAtX maps a pixel offset inside the text to a cursor index.
func (ctx *Context) runeIndexAtX(runes []rune, x float32) int {
	cw := ctx.style.CharWidth * ctx.style.FontScale
	if cw <= 0 {
		return 0
	}
	idx := int((x + cw*0.5) / cw)
	return clampi(idx, 0, len(runes))
}

func wordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isSpaceRune(runes[pos]) {
		pos--
	}
	for pos > 0 && !isSpaceRune(runes[pos-1]) {
		pos--
	}
	return pos
}

func wordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !isSpaceRune(runes[pos]) {
		pos++
	}
	for pos < n && isSpaceRune(runes[pos]) {
		pos++
	}
	return pos
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
