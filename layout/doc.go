// Package layout converts a dom tree into the layout tree consumed by a
// pagination engine.
//
// Most elements pass straight through: block elements become block boxes,
// phrasing elements become inline boxes, text becomes text runs, and images
// and SVG content are forwarded with their attributes untouched. Two kinds of
// element are resolved on the way:
//
//   - li elements get a [model.Marker] from the lists package
//   - td and th elements get their resolved cell style from the tables package
//
// # Converting
//
//	conv := layout.NewConverter(
//		layout.WithLogger(logger),
//		layout.WithParallelism(4),
//	)
//	root, err := conv.Convert(ctx, reader.Root())
//
// With parallelism above one the top-level subtrees are converted
// concurrently. The output is identical to a sequential conversion.
//
// # Errors
//
// A table cell with no table ancestor stops the conversion; the returned
// error wraps [tables.ErrOutsideTable]. Cancelling ctx stops the conversion
// with ctx.Err().
package layout
