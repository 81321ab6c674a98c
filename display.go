package evmtypes

import (
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	// tagWidth is the padded width of the type-tag column.
	tagWidth = 7

	// byteChunkLen is the number of hex characters per bytes line.
	byteChunkLen = 64

	// indent is prepended to the prefix for each nesting level.
	indent = "   "
)

// Line is one rendered output line. Text is the complete plain line; Tag is
// the leaf type tag, carried separately so styling adapters do not have to
// re-parse the text. Bracket and continuation lines have an empty Tag.
type Line struct {
	Tag  string
	Text string
}

func (l Line) String() string {
	return l.Text
}

// Render pretty-prints decoded values as aligned, tagged text lines, one
// scalar per line with composites bracketed across lines. The output is
// deterministic and order-preserving. Rendering is pure; styling belongs to
// adapters such as Styled.
func Render(values []DecodedValue, prefix string, opts ...Option) ([]Line, error) {
	cfg := apply(opts)
	return renderValues(values, prefix, 0, cfg)
}

func renderValues(values []DecodedValue, prefix string, depth int, cfg *config) ([]Line, error) {
	if depth > cfg.maxDepth {
		return nil, boundsAt(depth, cfg)
	}

	var out []Line
	for _, v := range values {
		switch v.Kind {
		case KindAddress:
			out = append(out, leafLine(prefix, "address", "0x"+hex.EncodeToString(v.Addr[:])))

		case KindInt:
			out = append(out, leafLine(prefix, "int", bigText(v)))

		case KindUint:
			out = append(out, leafLine(prefix, "uint", bigText(v)))

		case KindString:
			out = append(out, leafLine(prefix, "string", v.Str))

		case KindBool:
			out = append(out, leafLine(prefix, "bool", strconv.FormatBool(v.Bool)))

		case KindBytes, KindFixedBytes:
			out = append(out, bytesLines(prefix, v.Bytes)...)

		case KindArray, KindFixedArray:
			lines, err := bracketLines(v.Elems, prefix, "[", "]", depth, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)

		case KindTuple:
			lines, err := bracketLines(v.Elems, prefix, "(", ")", depth, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)
		}
	}
	return out, nil
}

// bytesLines hex-encodes data into fixed-width chunks. Only the first line
// carries the tag and "0x" prefix; continuation lines are indented so the
// hex columns align.
func bytesLines(prefix string, data []byte) []Line {
	h := hex.EncodeToString(data)
	if h == "" {
		return []Line{leafLine(prefix, "bytes", "0x")}
	}

	var out []Line
	for start := 0; start < len(h); start += byteChunkLen {
		end := start + byteChunkLen
		if end > len(h) {
			end = len(h)
		}
		chunk := h[start:end]
		if start == 0 {
			out = append(out, leafLine(prefix, "bytes", "0x"+chunk))
		} else {
			out = append(out, Line{Text: prefix + strings.Repeat(" ", tagWidth) + indent + chunk})
		}
	}
	return out
}

func bracketLines(elems []DecodedValue, prefix, open, closing string, depth int, cfg *config) ([]Line, error) {
	if len(elems) == 0 {
		return []Line{{Text: prefix + open + closing}}, nil
	}

	out := []Line{{Text: prefix + open}}
	inner, err := renderValues(elems, prefix+indent, depth+1, cfg)
	if err != nil {
		return nil, err
	}
	out = append(out, inner...)
	out = append(out, Line{Text: prefix + closing})
	return out, nil
}

func leafLine(prefix, tag, text string) Line {
	return Line{Tag: tag, Text: prefix + padTag(tag) + " " + text}
}

// bigText formats an integer value in decimal. A zero-value DecodedValue
// carries a nil Big; render it as zero rather than panicking.
func bigText(v DecodedValue) string {
	if v.Big == nil {
		return "0"
	}
	return v.Big.String()
}

// padTag pads a tag to the fixed column width.
func padTag(tag string) string {
	if len(tag) >= tagWidth {
		return tag
	}
	return tag + strings.Repeat(" ", tagWidth-len(tag))
}
