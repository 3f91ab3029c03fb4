package imui

import "sync"

// Built-in font atlas geometry. The renderer rasterizes the same
// ASCII range into a texture with this layout, and AddText computes
// texture coordinates from these constants. Glyphs are monospace
// cells in a left-to-right, top-to-bottom grid.
const (
	FontCellWidth  = 7
	FontCellHeight = 13
	FontFirstChar  = 32  // space
	FontLastChar   = 126 // tilde
	FontAtlasCols  = 16
	FontAtlasRows  = (FontLastChar - FontFirstChar + FontAtlasCols) / FontAtlasCols
	FontAtlasW     = FontAtlasCols * FontCellWidth
	FontAtlasH     = FontAtlasRows * FontCellHeight
)

// DrawList accumulates vertices and indices for one frame. Commands
// batch consecutive primitives that share a texture and clip rect;
// SetTexture and PushClipRect split the batch.
type DrawList struct {
	Vertices []Vertex
	Indices  []uint32
	Commands []DrawCmd

	clipStack  []Rect
	curTexture uint32
	vtxStart   int // Vertex offset where the open command began
	idxStart   int // Index offset where the open command began
}

// DrawData is the frame's render output: every draw list in paint
// order plus the display size the lists were built for.
type DrawData struct {
	Lists       []*DrawList
	DisplaySize Vec2
}

// TotalVtxCount returns the vertex count summed over all lists.
func (d *DrawData) TotalVtxCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.Vertices)
	}
	return n
}

// TotalIdxCount returns the index count summed over all lists.
func (d *DrawData) TotalIdxCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.Indices)
	}
	return n
}

// drawListPool reuses DrawList buffers between frames. Immediate-mode
// rendering rebuilds the full draw list every frame, so this is the
// hottest allocation in the package.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			Vertices:  make([]Vertex, 0, 4096),
			Indices:   make([]uint32, 0, 8192),
			Commands:  make([]DrawCmd, 0, 64),
			clipStack: make([]Rect, 0, 8),
		}
	},
}

func acquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Reset()
	return dl
}

func releaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Reset clears the list for reuse, keeping allocated capacity.
func (dl *DrawList) Reset() {
	dl.Vertices = dl.Vertices[:0]
	dl.Indices = dl.Indices[:0]
	dl.Commands = dl.Commands[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.curTexture = 0
	dl.vtxStart = 0
	dl.idxStart = 0
}

// PushClipRect restricts drawing to rect, intersected with any
// enclosing clip rect.
func (dl *DrawList) PushClipRect(rect Rect) {
	if n := len(dl.clipStack); n > 0 {
		rect = rect.Intersect(dl.clipStack[n-1])
	}
	dl.splitCmd()
	dl.clipStack = append(dl.clipStack, rect)
}

// PopClipRect restores the previous clip rect.
func (dl *DrawList) PopClipRect() {
	if n := len(dl.clipStack); n > 0 {
		dl.splitCmd()
		dl.clipStack = dl.clipStack[:n-1]
	}
}

// CurrentClipRect returns the active clip rect and whether one is set.
func (dl *DrawList) CurrentClipRect() (Rect, bool) {
	if n := len(dl.clipStack); n > 0 {
		return dl.clipStack[n-1], true
	}
	return Rect{}, false
}

// SetTexture switches the texture for subsequent primitives. Zero
// means untextured (solid fill).
func (dl *DrawList) SetTexture(id uint32) {
	if id == dl.curTexture {
		return
	}
	dl.splitCmd()
	dl.curTexture = id
}

// splitCmd closes the open command if it has any indices.
func (dl *DrawList) splitCmd() {
	count := len(dl.Indices) - dl.idxStart
	if count <= 0 {
		return
	}
	cmd := DrawCmd{
		ElemCount:    uint32(count),
		TextureID:    dl.curTexture,
		VertexOffset: uint32(dl.vtxStart),
		IndexOffset:  uint32(dl.idxStart),
	}
	if clip, ok := dl.CurrentClipRect(); ok {
		cmd.ClipRect = [4]float32{clip.X, clip.Y, clip.X + clip.W, clip.Y + clip.H}
	}
	dl.Commands = append(dl.Commands, cmd)
	dl.idxStart = len(dl.Indices)
}

// Finalize closes the trailing command. Call once at end of frame;
// drawing after Finalize is undefined.
func (dl *DrawList) Finalize() {
	dl.splitCmd()
}

// primQuad appends four vertices as a quad (two triangles).
func (dl *DrawList) primQuad(v0, v1, v2, v3 Vertex) {
	base := uint32(len(dl.Vertices) - dl.vtxStart)
	dl.Vertices = append(dl.Vertices, v0, v1, v2, v3)
	dl.Indices = append(dl.Indices,
		base, base+1, base+2,
		base, base+2, base+3)
}

// AddRect draws a filled axis-aligned rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	dl.AddRectUV(x, y, w, h, 0, 0, 0, 0, color)
}

// AddRectUV draws a filled rectangle with explicit texture
// coordinates at its corners.
func (dl *DrawList) AddRectUV(x, y, w, h, u0, v0, u1, v1 float32, color uint32) {
	dl.primQuad(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
}

// AddRectOutline draws a rectangle border of the given thickness,
// inset into the rect.
func (dl *DrawList) AddRectOutline(x, y, w, h, thickness float32, color uint32) {
	t := thickness
	dl.AddRect(x, y, w, t, color)
	dl.AddRect(x, y+h-t, w, t, color)
	dl.AddRect(x, y+t, t, h-2*t, color)
	dl.AddRect(x+w-t, y+t, t, h-2*t, color)
}

// AddLine draws a line segment of the given thickness.
func (dl *DrawList) AddLine(x0, y0, x1, y1, thickness float32, color uint32) {
	dx := x1 - x0
	dy := y1 - y0
	length := sqrtf(dx*dx + dy*dy)
	if length <= 0 {
		return
	}
	nx := -dy / length * thickness * 0.5
	ny := dx / length * thickness * 0.5
	dl.primQuad(
		Vertex{Pos: [2]float32{x0 + nx, y0 + ny}, Color: color},
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
		Vertex{Pos: [2]float32{x0 - nx, y0 - ny}, Color: color},
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x0, y0, x1, y1, x2, y2 float32, color uint32) {
	base := uint32(len(dl.Vertices) - dl.vtxStart)
	dl.Vertices = append(dl.Vertices,
		Vertex{Pos: [2]float32{x0, y0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
	)
	dl.Indices = append(dl.Indices, base, base+1, base+2)
}

// AddText draws a run of text using the built-in font atlas. The
// caller must have selected the atlas texture with SetTexture. Runes
// outside the atlas range render as '?'.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charW, charH float32) {
	cw := charW * scale
	ch := charH * scale
	du := float32(FontCellWidth) / float32(FontAtlasW)
	dv := float32(FontCellHeight) / float32(FontAtlasH)
	px := x
	for _, r := range text {
		if r == '\n' {
			px = x
			y += ch
			continue
		}
		if r < FontFirstChar || r > FontLastChar {
			r = '?'
		}
		idx := int(r) - FontFirstChar
		col := idx % FontAtlasCols
		row := idx / FontAtlasCols
		u0 := float32(col) * du
		v0 := float32(row) * dv
		dl.AddRectUV(px, y, cw, ch, u0, v0, u0+du, v0+dv, color)
		px += cw
	}
}
