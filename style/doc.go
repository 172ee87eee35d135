// Package style holds resolved CSS declarations and the ordered cascade
// attached to every element of a boxtree document.
//
// A [Cascade] is an ordered sequence of [Declarations]. Entries are merged
// left to right, so a later entry overrides an earlier one:
//
//	c := style.Cascade{
//	    {"border-width": "1px"},
//	    style.ParseInline("border-width: 2px; border-collapse: collapse"),
//	}
//	merged := c.Merged() // border-width: 2px
//
// [Merge] is the single merge helper shared by the list and table resolvers.
//
// # Inline Styles
//
// [ParseInline] parses the value of a style attribute. Property names are
// lowercased and a few shorthands are expanded:
//
//   - border - kept verbatim and expanded to border-width, border-style, border-color
//   - margin, padding - expanded to the four sides
package style
