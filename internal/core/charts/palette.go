package charts

const DefaultPalette = "default"

var palettes = map[string][]string{
	"default":    {"#5470C6", "#91CC75", "#FAC858", "#EE6666", "#73C0DE", "#3BA272", "#FC8452", "#9A60B4", "#EA7CCC"},
	"clinical":   {"#B71C1C", "#1565C0", "#2E7D32", "#F9A825", "#6A1B9A", "#00838F", "#EF6C00", "#4E342E"},
	"pastel":     {"#A8DADC", "#F4A261", "#E9C46A", "#CDB4DB", "#FFAFCC", "#BDE0FE", "#B5E48C", "#FFD6A5"},
	"vivid":      {"#E63946", "#1D3557", "#2A9D8F", "#F4A261", "#8338EC", "#FB5607", "#3A86FF", "#FFBE0B"},
	"monochrome": {"#0B3C5D", "#1D5F8A", "#3282B8", "#5FA8D3", "#8FC1E3", "#BBE1FA"},
}

// PaletteNames lists the available palettes.
func PaletteNames() []string {
	return []string{"default", "clinical", "pastel", "vivid", "monochrome"}
}

// Palette returns a copy of the named palette, or the default one when the
// name is unknown.
func Palette(name string) []string {
	colors, ok := palettes[name]
	if !ok {
		colors = palettes[DefaultPalette]
	}
	out := make([]string, len(colors))
	copy(out, colors)
	return out
}
