package theme

import (
	"fmt"
	"sort"
	"strings"
)

// baseColors are stock palette entries referenced by the document shell.
var baseColors = map[string]string{
	"gray-50":  "rgb(249, 250, 251)",
	"gray-800": "rgb(31, 41, 55)",
}

// CSS renders the tokens as custom properties plus background and text
// utilities for every color, with dark: variants for the configured strategy.
// It lets pages render correctly without running the CSS build.
func (c Config) CSS() string {
	colors := make(map[string]string, len(baseColors)+len(c.Theme.Extend.Colors))
	for k, v := range baseColors {
		colors[k] = v
	}
	for k, v := range c.Theme.Extend.Colors {
		colors[k] = v
	}
	names := make([]string, 0, len(colors))
	for k := range colors {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", n, colors[n])
	}
	fonts := make([]string, 0, len(c.Theme.Extend.FontFamily))
	for k := range c.Theme.Extend.FontFamily {
		fonts = append(fonts, k)
	}
	sort.Strings(fonts)
	for _, f := range fonts {
		fmt.Fprintf(&b, "  --font-%s: %s;\n", f, fontStack(c.Theme.Extend.FontFamily[f]))
	}
	b.WriteString("}\n")

	if _, ok := c.Theme.Extend.FontFamily["sans"]; ok {
		b.WriteString("body { font-family: var(--font-sans); }\n")
	}
	for _, f := range fonts {
		fmt.Fprintf(&b, ".font-%s { font-family: var(--font-%s); }\n", f, f)
	}

	var dark strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, ".bg-%s { background-color: var(--color-%s); }\n", n, n)
		fmt.Fprintf(&b, ".text-%s { color: var(--color-%s); }\n", n, n)
		fmt.Fprintf(&dark, "%s { background-color: var(--color-%s); }\n", c.darkSelector("bg-"+n), n)
		fmt.Fprintf(&dark, "%s { color: var(--color-%s); }\n", c.darkSelector("text-"+n), n)
	}
	if c.DarkMode == DarkModeMedia {
		b.WriteString("@media (prefers-color-scheme: dark) {\n")
		b.WriteString(dark.String())
		b.WriteString("}\n")
	} else {
		b.WriteString(dark.String())
	}
	return b.String()
}

func (c Config) darkSelector(utility string) string {
	sel := `.dark\:` + utility
	if c.DarkMode == DarkModeMedia {
		return sel
	}
	return ".dark " + sel
}

func fontStack(families []string) string {
	out := make([]string, len(families))
	for i, f := range families {
		if strings.ContainsAny(f, " ") {
			out[i] = fmt.Sprintf("%q", f)
		} else {
			out[i] = f
		}
	}
	return strings.Join(out, ", ")
}
