// Package htmldoc builds boxtree element trees from HTML and Markdown.
package htmldoc

// NavigationExclusionMode controls how navigation, headers, and footers are filtered.
type NavigationExclusionMode int

const (
	// NavigationExclusionNone includes all content without filtering.
	NavigationExclusionNone NavigationExclusionMode = iota

	// NavigationExclusionExplicit skips only explicit semantic HTML5 elements:
	// <nav>, <aside>, and ARIA roles (role="navigation", role="complementary").
	// <header> and <footer> are only skipped when they are direct children of <body>
	// or a single top-level wrapper element.
	NavigationExclusionExplicit

	// NavigationExclusionStandard combines explicit element detection with
	// common class/id pattern matching, such as nav, navbar, menu, footer and
	// sidebar.
	NavigationExclusionStandard

	// NavigationExclusionAggressive adds link-density heuristics to standard detection.
	// Sections with very high link-to-text ratios are excluded. This may occasionally
	// exclude legitimate content like link-heavy documentation or "related articles" sections.
	NavigationExclusionAggressive
)

// String returns the name of the mode.
func (m NavigationExclusionMode) String() string {
	switch m {
	case NavigationExclusionNone:
		return "none"
	case NavigationExclusionExplicit:
		return "explicit"
	case NavigationExclusionStandard:
		return "standard"
	case NavigationExclusionAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Options controls how a document is turned into an element tree.
// The zero value keeps all content.
type Options struct {
	NavigationExclusion NavigationExclusionMode
}
