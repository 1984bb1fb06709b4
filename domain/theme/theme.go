// Package theme holds the fixed chart palettes and the cyclic color
// assignment rule shared by every chart type.
package theme

// DefaultTheme is the silent fallback for unknown theme names.
const DefaultTheme = "Default"

// palettes is immutable process-wide constant data; every palette
// carries ten entries so the cycling rule wraps at index 10.
var palettes = map[string][]string{
	"Default": {
		"#52B7D8", "#E16032", "#FFB03B", "#54A77B", "#4FD2D2",
		"#E287B2", "#F39C12", "#8E44AD", "#2C3E50", "#16A085",
	},
	"Warm": {
		"#E16032", "#F39C12", "#FFB03B", "#D35400", "#C0392B",
		"#E74C3C", "#EC7063", "#F5B041", "#DC7633", "#A93226",
	},
	"Cool": {
		"#52B7D8", "#4FD2D2", "#5DADE2", "#48C9B0", "#45B39D",
		"#2E86C1", "#17A589", "#1ABC9C", "#3498DB", "#76D7C4",
	},
	"Earth": {
		"#7D6608", "#9C640C", "#B9770E", "#873600", "#6E2C00",
		"#A04000", "#935116", "#AF601A", "#784212", "#5B2C6F",
	},
	"Vivid": {
		"#FF5733", "#33FF57", "#3357FF", "#F1C40F", "#9B59B6",
		"#E67E22", "#1ABC9C", "#E74C3C", "#2ECC71", "#34495E",
	},
	"Pastel": {
		"#AED6F1", "#A9DFBF", "#F9E79F", "#F5CBA7", "#D7BDE2",
		"#A3E4D7", "#FAD7A0", "#D5DBDB", "#F5B7B1", "#D2B4DE",
	},
}

// Names lists the available theme names.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	return names
}

// Palette returns the source palette for a theme, falling back to the
// default theme for unknown names. Callers must not mutate the result.
func Palette(themeName string) []string {
	if p, ok := palettes[themeName]; ok {
		return p
	}
	return palettes[DefaultTheme]
}

// Colors returns count colors for a theme. A non-empty customColors
// slice replaces the theme palette entirely. When count exceeds the
// source length colors cycle: result[i] == source[i % len(source)].
// count <= 0 yields an empty slice.
func Colors(themeName string, count int, customColors []string) []string {
	if count <= 0 {
		return []string{}
	}
	source := source(themeName, customColors)
	out := make([]string, count)
	for i := range out {
		out[i] = source[i%len(source)]
	}
	return out
}

// ColorAt returns the color for a single index under the same cycling
// rule Colors applies.
func ColorAt(themeName string, index int, customColors []string) string {
	source := source(themeName, customColors)
	if index < 0 {
		index = 0
	}
	return source[index%len(source)]
}

// Scale builds a label-keyed color function over domainLabels. Labels
// outside the supplied domain fall back to the first color.
func Scale(themeName string, domainLabels []string, customColors []string) func(label string) string {
	source := source(themeName, customColors)
	byLabel := make(map[string]string, len(domainLabels))
	for i, label := range domainLabels {
		byLabel[label] = source[i%len(source)]
	}
	return func(label string) string {
		if c, ok := byLabel[label]; ok {
			return c
		}
		return source[0]
	}
}

func source(themeName string, customColors []string) []string {
	if len(customColors) > 0 {
		return customColors
	}
	return Palette(themeName)
}
