// Package dom provides the element tree consumed by the boxtree resolvers
// and the tree queries they share.
//
// A tree is normally produced by the htmldoc package, but callers can also
// build one directly:
//
//	table := dom.NewElement("table", nil)
//	row := table.AppendChild(dom.NewElement("tr", nil))
//	row.AppendChild(dom.NewElement("td", map[string]string{"colspan": "2"}))
//
// # Queries
//
// The resolvers only read the tree. The queries they rely on are:
//
//   - [Node.ElementChildren] - direct element children, optionally by tag
//   - [Node.Closest] - nearest match walking upward, starting at the node itself
//   - [Node.PreviousElementSibling] and [Node.IndexOfType] - sibling navigation
//   - [Rows] - the rows of a table, bare rows first, then thead/tbody rows
//
// Nodes are never mutated by the queries, so a finished tree can be shared
// between goroutines.
package dom
