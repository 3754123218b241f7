package renderer

// Options are the recognized layout and normalization settings.
// Sizes are in millimetres except FontSize, which is in points.
type Options struct {
	Margin          float64
	FontFamily      string
	FontSize        float64
	LineHeight      float64
	BlankLineHeight float64
	PageSize        string
	StripMarkdown   bool
}

// DefaultOptions returns uniform 15mm margins, Helvetica 12pt on A4.
func DefaultOptions() Options {
	return Options{
		Margin:          15,
		FontFamily:      "Helvetica",
		FontSize:        12,
		LineHeight:      8,
		BlankLineHeight: 8,
		PageSize:        "A4",
		StripMarkdown:   true,
	}
}

type implRenderer struct {
	opts Options
}

// New creates a Renderer. Zero-valued numeric or string options fall back to
// DefaultOptions; StripMarkdown is taken as given.
func New(opts Options) Renderer {
	return &implRenderer{opts: withDefaults(opts)}
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Margin <= 0 {
		opts.Margin = def.Margin
	}
	if opts.FontFamily == "" {
		opts.FontFamily = def.FontFamily
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.LineHeight <= 0 {
		opts.LineHeight = def.LineHeight
	}
	if opts.BlankLineHeight <= 0 {
		opts.BlankLineHeight = def.BlankLineHeight
	}
	if opts.PageSize == "" {
		opts.PageSize = def.PageSize
	}
	return opts
}
