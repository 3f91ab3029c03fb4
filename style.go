package imui

// Style defines the visual appearance of widgets.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Frames (buttons, checkbox boxes, input fields, sliders)
	FrameColor        uint32
	FrameHoveredColor uint32
	FrameActiveColor  uint32
	FrameBorderColor  uint32

	// Headers (collapsing headers, table header rows)
	HeaderColor        uint32
	HeaderHoveredColor uint32
	HeaderActiveColor  uint32

	// Check marks, radio dots, slider grabs
	CheckMarkColor    uint32
	SliderGrabColor   uint32
	SliderGrabActive  uint32

	// Text input
	InputBgColor        uint32
	InputFocusedBgColor uint32
	SelectionBgColor    uint32
	CursorColor         uint32
	HintColor           uint32

	// Separators and table borders
	SeparatorColor uint32
	BorderColor    uint32
	RowBgAltColor  uint32

	// Sizing
	FontScale    float32
	CharWidth    float32
	CharHeight   float32
	ItemSpacing  float32 // Vertical gap between items
	InnerSpacing float32 // Horizontal gap between a frame and its label
	FramePadding float32 // Padding inside framed widgets
	IndentWidth  float32
	BorderSize   float32

	// Widget widths
	FrameWidth  float32 // Default width of sliders, drags and inputs
	GrabMinSize float32 // Minimum slider grab extent
}

// DefaultStyle returns the dark default theme.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		FrameColor:        RGBA(41, 74, 122, 138),
		FrameHoveredColor: RGBA(66, 150, 250, 102),
		FrameActiveColor:  RGBA(66, 150, 250, 171),
		FrameBorderColor:  RGBA(110, 110, 128, 128),

		HeaderColor:        RGBA(66, 150, 250, 79),
		HeaderHoveredColor: RGBA(66, 150, 250, 204),
		HeaderActiveColor:  RGBA(66, 150, 250, 255),

		CheckMarkColor:   RGBA(66, 150, 250, 255),
		SliderGrabColor:  RGBA(61, 133, 224, 255),
		SliderGrabActive: RGBA(66, 150, 250, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		SelectionBgColor:    RGBA(66, 150, 250, 89),
		CursorColor:         ColorWhite,
		HintColor:           RGBA(128, 128, 128, 255),

		SeparatorColor: RGBA(110, 110, 128, 128),
		BorderColor:    RGBA(80, 80, 80, 255),
		RowBgAltColor:  RGBA(255, 255, 255, 15),

		FontScale:    1.0,
		CharWidth:    FontCellWidth,
		CharHeight:   FontCellHeight,
		ItemSpacing:  4,
		InnerSpacing: 6,
		FramePadding: 4,
		IndentWidth:  20,
		BorderSize:   1,

		FrameWidth:  200,
		GrabMinSize: 12,
	}
}

// DarkStyle is an alias for the default theme.
func DarkStyle() Style {
	return DefaultStyle()
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.FrameColor = RGBA(210, 210, 215, 255)
	s.FrameHoveredColor = RGBA(190, 200, 220, 255)
	s.FrameActiveColor = RGBA(160, 180, 215, 255)
	s.HeaderColor = RGBA(200, 210, 230, 255)
	s.HeaderHoveredColor = RGBA(180, 200, 230, 255)
	s.HeaderActiveColor = RGBA(160, 190, 230, 255)
	s.CheckMarkColor = RGBA(0, 100, 200, 255)
	s.SliderGrabColor = RGBA(0, 110, 210, 255)
	s.SliderGrabActive = RGBA(0, 130, 230, 255)
	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.SelectionBgColor = RGBA(0, 120, 215, 89)
	s.CursorColor = ColorBlack
	s.HintColor = RGBA(140, 140, 140, 255)
	s.SeparatorColor = RGBA(190, 190, 190, 255)
	s.BorderColor = RGBA(180, 180, 180, 255)
	s.RowBgAltColor = RGBA(0, 0, 0, 10)
	return s
}
