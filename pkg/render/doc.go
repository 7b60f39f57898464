// Package render turns a note and its formatting into presentable output.
//
// Terminal renders with lipgloss. A terminal cannot switch fonts, so family and
// size map to text attributes. HTML renders the content as Markdown with
// goldmark inside an element carrying the formatting as inline CSS.
package render
