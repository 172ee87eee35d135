// Package lists resolves the marker drawn before each list item.
//
// [Resolve] looks at the item's cascaded list style, falling back to the
// style of its owning ol or ul, and returns one of:
//
//   - nil - the style contains "none"
//   - an image marker - the style contains url(...)
//   - a bullet "•" - the item is not in an ordered list
//   - a numeral such as "3.", "c." or "iv." - ordered lists
//
// Numbering honours the list's start attribute and per-item value
// overrides. A value on an item restarts numbering for that item and every
// following item that has no value of its own:
//
//	<ol start="5">
//	  <li>5.</li>
//	  <li value="10">10.</li>
//	  <li>11.</li>
//	</ol>
//
// Roman numerals are rendered from the item's position among its li
// siblings and ignore start and value.
package lists
