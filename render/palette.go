package render

// FallbackColor is used for every language missing from the palette
const FallbackColor = "#9CA3AF"

// Palette maps language names to the color used for dots, bars and tags
// it is never modified once built
type Palette struct {
	colors map[string]string
}

// DefaultPalette returns the colors github uses for the most common languages
func DefaultPalette() Palette {
	return NewPalette(map[string]string{
		"JavaScript":       "#f1e05a",
		"TypeScript":       "#3178c6",
		"Python":           "#3572A5",
		"HTML":             "#e34c26",
		"CSS":              "#563d7c",
		"Java":             "#b07219",
		"C#":               "#178600",
		"Ruby":             "#701516",
		"Go":               "#00ADD8",
		"Rust":             "#dea584",
		"PHP":              "#4F5D95",
		"Swift":            "#F05138",
		"Kotlin":           "#A97BFF",
		"Shell":            "#89e051",
		"Dart":             "#00B4AB",
		"Jupyter Notebook": "#DA5B0B",
		"Vue":              "#41b883",
		"Dockerfile":       "#384d54",
		"SCSS":             "#c6538c",
		"Makefile":         "#427819",
	})
}

// NewPalette copies the given colors so later changes to the map are not visible
func NewPalette(colors map[string]string) Palette {
	copied := make(map[string]string, len(colors))

	for lang, color := range colors {
		copied[lang] = color
	}

	return Palette{colors: copied}
}

// Color returns the color of a language, FallbackColor when unknown
func (p Palette) Color(lang string) string {
	if color, found := p.colors[lang]; found {
		return color
	}

	return FallbackColor
}

// Len returns the number of known languages
func (p Palette) Len() int {
	return len(p.colors)
}
