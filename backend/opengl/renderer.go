// Package opengl renders imui draw data with OpenGL 3 era GL. It is
// the stock Renderer implementation; pair it with backend/glfw or any
// platform that provides a current GL context.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/immediate-mode/imui"
)

const defaultGLSLVersion = "#version 130"

// Renderer implements imui.Renderer on top of OpenGL.
type Renderer struct {
	glslVersion string

	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	posAttrib int32
	uvAttrib  int32
	colAttrib int32
}

const vertexShaderBody = `
in vec2 aPos;
in vec2 aTexCoord;
in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
`

// The font atlas stores coverage in the red channel only; textured
// draws tint it with the vertex color.
const fragmentShaderBody = `
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(fontTexture, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
`

// NewRenderer creates a renderer. glslVersion is the "#version"
// directive prefixed to the shaders; empty selects a GL 3.0
// compatible default. GL objects are created in Init, which must run
// with a current GL context.
func NewRenderer(glslVersion string) *Renderer {
	if glslVersion == "" {
		glslVersion = defaultGLSLVersion
	}
	return &Renderer{glslVersion: glslVersion}
}

// Init compiles the shaders, sets up vertex buffers and uploads the
// font atlas, then registers the atlas texture with the context.
func (r *Renderer) Init(ctx *imui.Context) error {
	if err := imui.AssertVersion("opengl", imui.Version); err != nil {
		return err
	}

	var err error
	r.shader, err = createShaderProgram(
		r.glslVersion+"\n"+vertexShaderBody+"\x00",
		r.glslVersion+"\n"+fragmentShaderBody+"\x00")
	if err != nil {
		return fmt.Errorf("opengl: create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.posAttrib = gl.GetAttribLocation(r.shader, gl.Str("aPos\x00"))
	r.uvAttrib = gl.GetAttribLocation(r.shader, gl.Str("aTexCoord\x00"))
	r.colAttrib = gl.GetAttribLocation(r.shader, gl.Str("aColor\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(imui.Vertex{}))
	gl.VertexAttribPointerWithOffset(uint32(r.posAttrib), 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(uint32(r.posAttrib))
	gl.VertexAttribPointerWithOffset(uint32(r.uvAttrib), 2, gl.FLOAT, false, stride,
		unsafe.Offsetof(imui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(uint32(r.uvAttrib))
	gl.VertexAttribPointerWithOffset(uint32(r.colAttrib), 4, gl.UNSIGNED_BYTE, true, stride,
		unsafe.Offsetof(imui.Vertex{}.Color))
	gl.EnableVertexAttribArray(uint32(r.colAttrib))

	gl.BindVertexArray(0)

	r.fontTex = createFontTexture()
	ctx.SetFontTexture(r.fontTex)

	return nil
}

// NewFrame is part of imui.Renderer. All device objects are created
// eagerly in Init, so there is nothing to do per frame.
func (r *Renderer) NewFrame() {}

// FontTextureID returns the GL name of the font atlas texture.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// RenderDrawData draws one frame of draw data. GL state touched here
// is saved and restored so the GUI can overlay a host scene.
func (r *Renderer) RenderDrawData(data *imui.DrawData) error {
	if data == nil || data.TotalVtxCount() == 0 {
		return nil
	}
	width := data.DisplaySize.X
	height := data.DisplaySize.Y
	if width <= 0 || height <= 0 {
		return nil
	}

	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, width, height, 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	for _, list := range data.Lists {
		r.renderList(list, width, height)
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.BindVertexArray(0)

	return nil
}

func (r *Renderer) renderList(list *imui.DrawList, width, height float32) {
	if len(list.Vertices) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(list.Vertices)*int(unsafe.Sizeof(imui.Vertex{})),
		gl.Ptr(list.Vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(list.Indices)*4,
		gl.Ptr(list.Indices), gl.STREAM_DRAW)

	for _, cmd := range list.Commands {
		if cmd.ElemCount == 0 {
			continue
		}

		clip := cmd.ClipRect
		if clip == [4]float32{} {
			clip = [4]float32{0, 0, width, height}
		}
		// GL scissor origin is bottom-left
		clipX := int32(clip[0])
		clipY := int32(height - clip[3])
		clipW := int32(clip[2] - clip[0])
		clipH := int32(clip[3] - clip[1])
		if clipX < 0 {
			clipW += clipX
			clipX = 0
		}
		if clipY < 0 {
			clipH += clipY
			clipY = 0
		}
		if clipW <= 0 || clipH <= 0 {
			continue
		}
		gl.Scissor(clipX, clipY, clipW, clipH)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_INT,
			uintptr(cmd.IndexOffset)*4,
			int32(cmd.VertexOffset),
		)
	}
}

// Shutdown releases all GL objects.
func (r *Renderer) Shutdown() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
		r.fontTex = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}

// createFontTexture rasterizes the printable ASCII range of the
// standard 7x13 bitmap face into the cell grid the core's AddText
// addresses, and uploads it as a single-channel texture.
func createFontTexture() uint32 {
	atlas := image.NewAlpha(image.Rect(0, 0, imui.FontAtlasW, imui.FontAtlasH))
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  atlas,
		Src:  image.White,
		Face: face,
	}
	for ch := imui.FontFirstChar; ch <= imui.FontLastChar; ch++ {
		idx := ch - imui.FontFirstChar
		col := idx % imui.FontAtlasCols
		row := idx / imui.FontAtlasCols
		d.Dot = fixed.P(col*imui.FontCellWidth, row*imui.FontCellHeight+face.Ascent)
		d.DrawString(string(rune(ch)))
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(imui.FontAtlasW), int32(imui.FontAtlasH),
		0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("vertex shader compilation failed: %s", shaderLog(vertexShader))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("fragment shader compilation failed: %s", shaderLog(fragmentShader))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return string(log)
}

func setEnabled(cap uint32, enabled bool) {
	if enabled {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

// orthoMatrix builds a column-major orthographic projection.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
