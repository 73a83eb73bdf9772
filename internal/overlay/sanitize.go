package overlay

import "strings"

// drawtext reserves quotes, colons, commas, and brackets as structural
// delimiters, and @ as the color alpha separator. Separator-like characters
// become a space so words stay split; the rest are dropped outright.
var sanitizeReplacer = strings.NewReplacer(
	"'", "",
	`"`, "",
	"[", "",
	"]", "",
	"@", "",
	":", " ",
	",", " ",
)

// Sanitize normalizes raw caption or channel text into a renderer-safe
// string: reserved characters are removed or replaced, whitespace runs
// collapse to a single space, and the result is trimmed. Empty input yields
// an empty string. This is a blunt denylist, not an escaper; the command
// serializer handles the characters that survive it.
func Sanitize(raw string) string {
	return strings.Join(strings.Fields(sanitizeReplacer.Replace(raw)), " ")
}
