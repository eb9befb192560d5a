package core

// DefaultPalette is the five step sequential green scale used when no
// palette is configured
var DefaultPalette = []string{"#ededed", "#d6e685", "#8cc665", "#44a340", "#1e6823"}

// CyclicColor picks the palette entry for a series index, wrapping around
// when the index is past the end. An empty palette yields an empty color.
func CyclicColor(index int, palette []string) string {
	if len(palette) == 0 {
		return ""
	}

	i := index % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}
