package domain

// Config is the resolved configuration for a run.
type Config struct {
	Input   InputConfig   `toml:"input"`
	Table   TableConfig   `toml:"table"`
	Filter  FilterConfig  `toml:"filter"`
	Output  OutputConfig  `toml:"output"`
	Render  RenderConfig  `toml:"render"`
	Metrics MetricsConfig `toml:"metrics"`
}

// InputConfig selects the documents to read.
type InputConfig struct {
	// Dir is scanned when Files is empty.
	Dir string `toml:"dir"`

	// Extension filters directory entries, compared case-insensitively.
	Extension string `toml:"extension"`

	// Files is an explicit list of documents, read in the given order.
	Files []string `toml:"files,omitempty"`

	// Encoding names the charset of the saved pages (WHATWG label).
	Encoding string `toml:"encoding"`
}

// TableConfig identifies the data table inside each page.
type TableConfig struct {
	ID          string `toml:"id"`
	ContainerID string `toml:"container_id"`
}

// FilterConfig restricts extraction to some course codes.
type FilterConfig struct {
	CourseCodes []string `toml:"course_codes,omitempty"`
}

// OutputConfig controls where artifacts go.
type OutputConfig struct {
	// Path is the artifact path without extension.
	Path string `toml:"path"`

	// Formats lists renderer names, e.g. "html", "text".
	Formats []string `toml:"formats"`
}

// RenderConfig holds presentation settings shared by renderers.
type RenderConfig struct {
	UnitLabel       string `toml:"unit_label"`
	FilterDelimiter string `toml:"filter_delimiter"`
	Title           string `toml:"title"`
}

// MetricsConfig controls the run metrics textfile.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			Dir:       "html-pages",
			Extension: ".html",
			Encoding:  "utf-8",
		},
		Table: TableConfig{
			ID: "scrollable",
		},
		Output: OutputConfig{
			Path:    "schedule_output",
			Formats: []string{"html"},
		},
		Render: DefaultRenderConfig(),
	}
}

// DefaultRenderConfig returns the built-in presentation settings.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		UnitLabel:       "واحد",
		FilterDelimiter: DefaultFilterDelimiter,
		Title:           "برنامه کلاس‌ها",
	}
}

// CodeFilter returns the configured course-code filter.
func (c Config) CodeFilter() CodeFilter {
	return NewCodeFilter(c.Filter.CourseCodes...)
}
