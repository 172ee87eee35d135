package model

// MarkerKind identifies how a list marker is drawn.
type MarkerKind int

const (
	MarkerText MarkerKind = iota
	MarkerImage
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerText:
		return "text"
	case MarkerImage:
		return "image"
	default:
		return "unknown"
	}
}

// Marker is the glyph or image drawn before a list item's content.
// A list item without a marker carries a nil *Marker.
type Marker struct {
	Kind MarkerKind
	Text string // "3.", "iv.", "•"
	URL  string // image markers only
}

// TextMarker returns a text marker.
func TextMarker(text string) *Marker {
	return &Marker{Kind: MarkerText, Text: text}
}

// ImageMarker returns an image marker.
func ImageMarker(url string) *Marker {
	return &Marker{Kind: MarkerImage, URL: url}
}
