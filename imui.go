package imui

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Platform abstracts the windowing layer: input capture, timing,
// display size and the system clipboard. backend/glfw is the stock
// implementation.
type Platform interface {
	// Init is called once from imui.Init, before the renderer.
	Init(ctx *Context) error

	// NewFrame refreshes per-frame platform state: display size,
	// delta time, mouse position and modifier keys.
	NewFrame(ctx *Context)

	// Shutdown releases platform resources. Called from Context.Shutdown.
	Shutdown()

	// Clipboard access for text editing widgets.
	ClipboardText() string
	SetClipboardText(text string)
}

// Renderer abstracts the graphics backend that consumes draw data.
// backend/opengl is the stock implementation.
type Renderer interface {
	// Init is called once from imui.Init, after the platform.
	Init(ctx *Context) error

	// NewFrame is called at the start of every frame, before the
	// platform backend. Device objects may be created lazily here.
	NewFrame()

	// RenderDrawData draws one finalized frame.
	RenderDrawData(data *DrawData) error

	// Shutdown releases device resources. Called from Context.Shutdown.
	Shutdown()
}

// Option configures the context at Init time.
type Option func(*Context)

// WithStyle sets the visual style.
func WithStyle(style Style) Option {
	return func(ctx *Context) { ctx.style = style }
}

// WithStateStore sets a custom widget state store.
func WithStateStore(store StateStore) Option {
	return func(ctx *Context) { ctx.stateStore = store }
}

// WithLogHandler installs a slog handler for debug logging.
// Without it, debug logging is discarded.
func WithLogHandler(h slog.Handler) Option {
	return func(ctx *Context) { ctx.log = slog.New(h) }
}

// Init creates the context and initializes both backends. The platform
// is initialized first so the renderer can read display metrics from
// the context. On error the partially initialized backends are shut
// down again.
func Init(platform Platform, renderer Renderer, opts ...Option) (*Context, error) {
	if platform == nil {
		return nil, errors.New("imui: nil platform")
	}
	if renderer == nil {
		return nil, errors.New("imui: nil renderer")
	}

	ctx := newContext()
	ctx.platform = platform
	ctx.renderer = renderer

	for _, opt := range opts {
		opt(ctx)
	}

	if err := platform.Init(ctx); err != nil {
		return nil, errors.Wrap(err, "imui: platform init")
	}
	if err := renderer.Init(ctx); err != nil {
		platform.Shutdown()
		return nil, errors.Wrap(err, "imui: renderer init")
	}

	return ctx, nil
}

// NewFrame starts a new frame. Backends advance first (renderer, then
// platform), then core frame state is reset. Widgets may be called
// after NewFrame returns, until Render.
func (ctx *Context) NewFrame() {
	if ctx == nil {
		panic("imui: NewFrame on nil context")
	}

	ctx.renderer.NewFrame()
	ctx.platform.NewFrame(ctx)

	// Release last frame's lists and acquire fresh ones.
	if ctx.drawList != nil {
		releaseDrawList(ctx.drawList)
	}
	if ctx.overlayList != nil {
		releaseDrawList(ctx.overlayList)
	}
	ctx.drawList = acquireDrawList()
	ctx.overlayList = acquireDrawList()

	ctx.io.newFrame(ctx.DeltaTime)
	ctx.resetFrame()
}

// Render finalizes the frame's draw lists and submits them to the
// renderer. The overlay list is drawn last so popups and tooltips land
// on top.
func (ctx *Context) Render() error {
	if ctx == nil {
		panic("imui: Render on nil context")
	}
	if ctx.drawList == nil {
		return nil
	}

	ctx.drawList.Finalize()
	ctx.overlayList.Finalize()

	data := &ctx.drawData
	data.DisplaySize = ctx.DisplaySize
	data.Lists = data.Lists[:0]
	data.Lists = append(data.Lists, ctx.drawList)
	if len(ctx.overlayList.Commands) > 0 {
		data.Lists = append(data.Lists, ctx.overlayList)
	}

	return ctx.renderer.RenderDrawData(data)
}

// DrawData returns the draw data produced by the last Render call.
// Valid until the next NewFrame.
func (ctx *Context) DrawData() *DrawData {
	return &ctx.drawData
}

// Shutdown tears down the renderer, then the platform, then the
// context itself. Idempotent; the context must not be used afterwards.
func (ctx *Context) Shutdown() {
	if ctx == nil || ctx.shutdown {
		return
	}
	ctx.shutdown = true

	ctx.renderer.Shutdown()
	ctx.platform.Shutdown()

	if ctx.drawList != nil {
		releaseDrawList(ctx.drawList)
		ctx.drawList = nil
	}
	if ctx.overlayList != nil {
		releaseDrawList(ctx.overlayList)
		ctx.overlayList = nil
	}
	ctx.drawData.Lists = nil
	ctx.log.Debug("context shut down", "frames", ctx.FrameCount)
}
