package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config captures output presentation options.
// Compact: emit the JSON array on one line instead of pretty-printing.
// IndentWidth: spaces per indent level when pretty-printing (default 2).
// PreviewLimit: max dialogue rows shown in the preview report (default 20).
// MaxConcurrent: parallel conversions in watch mode (default 2).
type Config struct {
	LoadedFromFile bool `json:"loadedFromFile"`
	Compact        bool `json:"compact"`
	IndentWidth    int  `json:"indentWidth"`
	PreviewLimit   int  `json:"previewLimit"`
	MaxConcurrent  int  `json:"maxConcurrent"`
}

// LoadDefaultOrEmpty returns default config or loads from local config.json file
func LoadDefaultOrEmpty() Config {
	return loadFrom("config.json")
}

func loadFrom(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// Missing config is the normal case; defaults apply.
		return Config{}
	}
	var conf Config
	err = json.Unmarshal(data, &conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error unmarshalling config:", err)
		return Config{}
	}
	conf.LoadedFromFile = true
	return conf
}

// Indent returns the per-level indent string for the JSON encoder.
func (c Config) Indent() string {
	if c.Compact {
		return ""
	}
	width := c.IndentWidth
	if width <= 0 {
		width = 2
	}
	return strings.Repeat(" ", width)
}

// Limit returns the preview row cap.
func (c Config) Limit() int {
	if c.PreviewLimit <= 0 {
		return 20
	}
	return c.PreviewLimit
}

// Concurrency returns the watch-mode worker cap.
func (c Config) Concurrency() int {
	if c.MaxConcurrent <= 0 {
		return 2
	}
	return c.MaxConcurrent
}
