package lint

// messages is the catalog mapping message keys to display formats.
// Keys are the stable identifiers of the reporting contract; the display
// text may change, the keys may not.
var messages = map[string]string{
	"line.new":         "'%s' should be on a new line",
	"line.previous":    "'%s' should be on the previous line",
	"line.break.after": "'{' should be followed by a line break",
	"needBraces":       "'%s' construct must use braces",
	"block.nested":     "avoid nested blocks",
}
