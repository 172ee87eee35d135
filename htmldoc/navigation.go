package htmldoc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// boilerplatePattern matches class and id values of navigation and
// boilerplate containers. Names must stand alone: "top-nav" matches,
// "navigator" does not.
var boilerplatePattern = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumb|breadcrumbs|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside)([^a-z]|$)`)

// Aggressive mode drops containers whose text is mostly links.
const (
	maxLinkDensity = 0.6
	minLinkCount   = 4
)

// exclusionChecker decides which subtrees are dropped while building the tree.
type exclusionChecker struct {
	mode    NavigationExclusionMode
	body    *html.Node
	wrapper *html.Node // single top-level div/main, if any
}

func newExclusionChecker(mode NavigationExclusionMode, doc *html.Node) *exclusionChecker {
	ec := &exclusionChecker{mode: mode}
	if mode == NavigationExclusionNone {
		return ec
	}
	ec.body = findElement(doc, "body")
	if ec.body == nil {
		ec.body = doc
	}
	ec.wrapper = topLevelWrapper(ec.body)
	return ec
}

// topLevelWrapper returns the only structural child of body, handling the
// common <body><div id="wrapper">...</div></body> pattern.
func topLevelWrapper(body *html.Node) *html.Node {
	var wrapper *html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Div, atom.Main:
			if wrapper != nil {
				return nil
			}
			wrapper = c
		case atom.Script, atom.Style, atom.Noscript, atom.Template:
		default:
			return nil
		}
	}
	return wrapper
}

func (ec *exclusionChecker) shouldExclude(n *html.Node) bool {
	if ec == nil || ec.mode == NavigationExclusionNone || n.Type != html.ElementNode {
		return false
	}
	if ec.explicit(n) {
		return true
	}
	if ec.mode >= NavigationExclusionStandard && matchesBoilerplate(n) {
		return true
	}
	if ec.mode >= NavigationExclusionAggressive && linkHeavy(n) {
		return true
	}
	return false
}

// explicit checks semantic elements and ARIA roles.
func (ec *exclusionChecker) explicit(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Nav, atom.Aside:
		return true
	case atom.Header, atom.Footer:
		return ec.isTopLevel(n)
	}

	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		return ec.isTopLevel(n)
	}
	return false
}

func (ec *exclusionChecker) isTopLevel(n *html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	return parent == ec.body || (ec.wrapper != nil && parent == ec.wrapper)
}

func matchesBoilerplate(n *html.Node) bool {
	for _, key := range []string{"class", "id"} {
		if v := getAttr(n, key); v != "" && boilerplatePattern.MatchString(v) {
			return true
		}
	}
	return false
}

func linkHeavy(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Div, atom.Section, atom.Ul, atom.Ol:
	default:
		return false
	}
	total := textLength(n, false)
	if total == 0 {
		return false
	}
	density := float64(textLength(n, true)) / float64(total)
	return density > maxLinkDensity && countLinks(n) >= minLinkCount
}

// textLength returns the length of trimmed text below n. With inLinks set
// only text inside <a> elements is counted.
func textLength(n *html.Node, inLinks bool) int {
	if n.Type == html.TextNode {
		if inLinks {
			return 0
		}
		return len(strings.TrimSpace(n.Data))
	}
	if inLinks && n.DataAtom == atom.A {
		return textLength(n, false)
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += textLength(c, inLinks)
	}
	return total
}

func countLinks(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countLinks(c)
	}
	return count
}

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
