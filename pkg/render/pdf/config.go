package pdf

// Margins are page margins in points.
type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Config holds page geometry and document metadata.
type Config struct {
	PageSize string
	Margins  Margins
	// LineHeight is the leading as a multiple of the font size.
	LineHeight float64
	Title      string
	Creator    string
}

// DefaultConfig returns an A4 page with one-inch margins and a short
// bottom margin.
func DefaultConfig() Config {
	return Config{
		PageSize:   "A4",
		Margins:    Margins{Left: 72, Right: 72, Top: 72, Bottom: 18},
		LineHeight: 1.2,
		Creator:    "markview",
	}
}

func applyDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.PageSize == "" {
		cfg.PageSize = def.PageSize
	}
	if cfg.Margins == (Margins{}) {
		cfg.Margins = def.Margins
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = def.LineHeight
	}
	if cfg.Creator == "" {
		cfg.Creator = def.Creator
	}
	return cfg
}
