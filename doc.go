/*
Package imui is an immediate-mode GUI layer with a flat, host-driven API.

The host owns the window and the render loop; imui owns widget layout,
interaction state and draw-list generation. All calls go through an
explicit *Context returned by Init. There is no global context and no
internal locking: every call must come from the goroutine that drives the
render loop, and call ordering is the host's responsibility.

# Quick Start

	platform := glfwbackend.NewPlatform(window, true)
	renderer := openglbackend.NewRenderer("#version 130")

	ctx, err := imui.Init(platform, renderer)
	if err != nil { ... }
	defer ctx.Shutdown()

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    ctx.NewFrame()

	    ctx.Text("Hello World")
	    if ctx.Button("Quit") {
	        window.SetShouldClose(true)
	    }

	    if err := ctx.Render(); err != nil { ... }
	    window.SwapBuffers()
	}

Platform and Renderer are backend interfaces; backend/glfw and
backend/opengl provide the stock implementations. Hosts with their own
windowing can implement Platform directly and feed input through the
Add*Event methods on InputState.

# Frame Lifecycle

NewFrame advances the renderer backend, then the platform backend, then
the core, in that order. Render finalizes the frame's draw lists and
submits them to the renderer. Shutdown tears down in reverse: renderer,
platform, context. Widgets may only be called between NewFrame and
Render.

# Widgets

Widget calls return their interaction result for the current frame:
Button returns true on the frame it was clicked, Checkbox and SliderFloat
return true on the frame the value changed, and so on. Value-editing
widgets update the caller's variable through a pointer; the boolean
return is the change notification.

Text entry points take pre-formatted strings. Format with fmt on the
host side:

	ctx.Text(fmt.Sprintf("fps: %.1f", fps))

# Widget State

Interior widget state (edit cursors, collapse state, column widths)
persists across frames in a StateStore keyed by widget ID. IDs hash the
label seeded by the ID stack, so they are stable across frames and
widget reordering. Disambiguate identical labels in loops with PushID
or PushIDInt. The default store is an in-memory map; supply your own
with WithStateStore.
*/
package imui
