package imui

import (
	"encoding/binary"
	"hash/fnv"
)

// ID identifies a widget for state persistence and interaction
// tracking. IDs are stable across frames: the same label under the
// same PushID scope always hashes to the same ID, so persisted state
// survives reordering of unrelated widgets.
type ID uint64

// GetID derives a widget ID from a label, seeded by the top of the
// ID stack. Widgets with the same label in the same scope collide;
// disambiguate with PushID or PushIDInt around loops.
func (ctx *Context) GetID(label string) ID {
	h := fnv.New64a()
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(ctx.currentID()))
	h.Write(seed[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// GetIDFromInt derives a widget ID from an integer, seeded by the ID
// stack. Useful for items in slices.
func (ctx *Context) GetIDFromInt(n int) ID {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(ctx.currentID()))
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))
	h.Write(buf[:])
	return ID(h.Sum64())
}

// PushID opens an ID scope. GetID calls until the matching PopID are
// seeded by it.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt opens an integer-keyed ID scope.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID closes the innermost ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

func (ctx *Context) currentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
