// Example opens a GLFW window and runs a tour of the widget set:
// buttons, checkboxes, sliders, text inputs and a table.
//
// Prerequisites:
//
//	OpenGL and X11 development headers
//	go run ./example/
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfwlib "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/lmittmann/tint"

	"github.com/immediate-mode/imui"
	imuiglfw "github.com/immediate-mode/imui/backend/glfw"
	"github.com/immediate-mode/imui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "imui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	imui.CheckVersion(imui.Version)

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})

	if err := glfwlib.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfwlib.Terminate()

	glfwlib.WindowHint(glfwlib.ContextVersionMajor, 4)
	glfwlib.WindowHint(glfwlib.ContextVersionMinor, 1)
	glfwlib.WindowHint(glfwlib.OpenGLProfile, glfwlib.OpenGLCoreProfile)
	glfwlib.WindowHint(glfwlib.OpenGLForwardCompatible, glfwlib.True)

	window, err := glfwlib.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfwlib.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	platform := imuiglfw.NewPlatform(window, true)
	renderer := opengl.NewRenderer("#version 410 core")

	ctx, err := imui.Init(platform, renderer, imui.WithLogHandler(logHandler))
	if err != nil {
		return fmt.Errorf("imui init: %w", err)
	}
	defer ctx.Shutdown()

	// Application state
	clickCount := 0
	checked := true
	mode := 0
	volume := float32(0.5)
	gain := float32(1.0)
	name := ""
	search := ""
	detailsVisible := true

	for !window.ShouldClose() {
		glfwlib.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx.NewFrame()

		ctx.Text("Widget tour")
		ctx.Separator()

		if ctx.Button("Click me") {
			clickCount++
		}
		ctx.SameLine(0, -1)
		ctx.Text(fmt.Sprintf("clicked %d times", clickCount))

		ctx.Checkbox("Enable output", &checked)

		if ctx.RadioButton("Mono", mode == 0) {
			mode = 0
		}
		ctx.SameLine(0, -1)
		if ctx.RadioButton("Stereo", mode == 1) {
			mode = 1
		}

		ctx.SliderFloat("Volume", &volume, 0, 1)
		ctx.DragFloat("Gain", &gain, 0.01, 0, 10)

		if ctx.InputText("Name", &name, 64, imui.InputTextFlagsEnterReturnsTrue, nil) {
			fmt.Println("name committed:", name)
		}
		ctx.InputTextWithHint("Search", "type to filter", &search, 0, imui.InputTextFlagsNone, nil)

		ctx.NewLine()

		if ctx.CollapsingHeader("Details", &detailsVisible, imui.TreeNodeFlagsDefaultOpen) {
			ctx.BulletText("draw lists are rebuilt every frame")
			ctx.BulletText("widget state lives in the context")
			ctx.TextColored(0.4, 0.8, 1.0, 1.0, "colors are plain RGBA floats")

			if ctx.BeginTable("stats", 3, imui.TableFlagsBorders|imui.TableFlagsRowBg, imui.Vec2{}, 0) {
				ctx.TableNextRow(imui.TableRowFlagsHeaders, 0)
				ctx.TableNextColumn()
				ctx.Text("Channel")
				ctx.TableNextColumn()
				ctx.Text("Mode")
				ctx.TableNextColumn()
				ctx.Text("Level")

				for i := 0; i < 4; i++ {
					ctx.TableNextRow(imui.TableRowFlagsNone, 0)
					ctx.TableNextColumn()
					ctx.Text(fmt.Sprintf("ch %d", i))
					ctx.TableNextColumn()
					if mode == 0 {
						ctx.Text("mono")
					} else {
						ctx.Text("stereo")
					}
					ctx.TableNextColumn()
					ctx.Text(fmt.Sprintf("%.2f", volume*float32(i+1)/4))
				}
				ctx.EndTable()
			}
		}

		ctx.BeginGroup()
		ctx.Text("Grouped")
		if ctx.Button("A") {
			fmt.Println("A")
		}
		ctx.EndGroup()
		ctx.SameLine(0, 20)
		if ctx.Button("Beside the group") {
			fmt.Println("B")
		}

		if err := ctx.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}

	return nil
}
