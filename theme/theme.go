// Package theme describes the design tokens shared by the CSS build and the
// server: custom colors, the font stack and the dark-mode strategy.
package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dark-mode strategies understood by the CSS tool.
const (
	DarkModeClass = "class"
	DarkModeMedia = "media"
)

// Config mirrors the keys of the CSS tool's configuration file.
type Config struct {
	DarkMode string   `json:"darkMode"`
	Content  []string `json:"content"`
	Theme    Theme    `json:"theme"`
	Plugins  []string `json:"plugins"`
}

type Theme struct {
	Extend Extend `json:"extend"`
}

type Extend struct {
	Colors     map[string]string   `json:"colors"`
	FontFamily map[string][]string `json:"fontFamily"`
}

// DefaultSans is the CSS tool's stock sans-serif stack.
var DefaultSans = []string{
	"ui-sans-serif",
	"system-ui",
	"sans-serif",
	"Apple Color Emoji",
	"Segoe UI Emoji",
	"Segoe UI Symbol",
	"Noto Color Emoji",
}

// Default returns the site's theme.
func Default() Config {
	return Config{
		DarkMode: DarkModeClass,
		Content: []string{
			"./views/**/*.go",
			"./content/**/*.{md,mdx}",
		},
		Theme: Theme{Extend: Extend{
			Colors: map[string]string{
				"material-light": "rgb(246, 248, 250)",
				"material-dark":  "rgb(0, 0, 0)",
				"accent":         "rgb(0, 124, 255)",
			},
			FontFamily: map[string][]string{
				"sans": append([]string{"Mona Sans"}, DefaultSans...),
			},
		}},
		Plugins: []string{"@tailwindcss/typography"},
	}
}

// ColorNames returns the custom color keys in sorted order.
func (c Config) ColorNames() []string {
	names := make([]string, 0, len(c.Theme.Extend.Colors))
	for k := range c.Theme.Extend.Colors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// WriteTailwindConfig writes a tailwind.config.js equivalent of c.
func (c Config) WriteTailwindConfig(w io.Writer) error {
	content, err := json.Marshal(c.Content)
	if err != nil {
		return err
	}
	th, err := json.MarshalIndent(c.Theme, "  ", "  ")
	if err != nil {
		return err
	}
	plugins := make([]string, len(c.Plugins))
	for i, p := range c.Plugins {
		plugins[i] = fmt.Sprintf("require(%q)", p)
	}
	_, err = fmt.Fprintf(w, "module.exports = {\n  darkMode: %q,\n  content: %s,\n  theme: %s,\n  plugins: [%s],\n};\n",
		c.DarkMode, content, th, strings.Join(plugins, ", "))
	return err
}
