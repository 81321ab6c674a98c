package evmtypes

import (
	"strings"

	"github.com/fatih/color"
)

// tagColor styles the type-tag column in terminal output.
var tagColor = color.New(color.FgBlue)

// Styled applies terminal colors to rendered lines, returning plain
// strings. It is a thin adapter over the Line contract: only the type tag
// is colored, value text and bracket lines pass through untouched. Honors
// color.NoColor.
func Styled(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if l.Tag == "" {
			out[i] = l.Text
			continue
		}
		tag := padTag(l.Tag)
		out[i] = strings.Replace(l.Text, tag, tagColor.Sprint(tag), 1)
	}
	return out
}
