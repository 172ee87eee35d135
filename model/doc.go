// Package model provides the layout-annotated tree produced by boxtree.
//
// The tree is what a pagination engine consumes: every element of the source
// document becomes a [Box], and the two places where the converter makes real
// decisions leave their results on the box:
//
//   - list items carry a [Marker] (text such as "3." or "iv.", or an image URL)
//   - table cells carry a resolved [Box.Style] with border widths and a
//     percentage width, and tables carry their column count
//
// Everything else is a structural pass-through: block elements become
// [BoxBlock] containers, inline elements become [BoxInline], text becomes
// [BoxText] runs, and img/svg content is forwarded with its attributes.
//
// # Document Structure
//
// The [Document] type wraps the root box with document [Metadata]:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Report"
//	doc.Root.Append(&model.Box{Kind: model.BoxBlock, Tag: "p"})
//
// Helpers such as [Document.Tables], [Document.ListItems] and [Box.Walk]
// make it easy to inspect the result.
package model
