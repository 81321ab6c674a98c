package evmtypes

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderText(t *testing.T, values []DecodedValue, prefix string) []string {
	t.Helper()
	lines, err := Render(values, prefix)
	require.NoError(t, err)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestRenderScalars(t *testing.T) {
	addr := common.HexToAddress("0x1234567890AbcdEF1234567890aBcdef12345678")

	tests := []struct {
		name  string
		value DecodedValue
		want  string
	}{
		{"address", AddressValue(addr), "address 0x1234567890abcdef1234567890abcdef12345678"},
		{"uint", UintValue(big.NewInt(69420)), "uint    69420"},
		{"int", IntValue(big.NewInt(-1)), "int     -1"},
		{"string", StringValue("hello"), "string  hello"},
		{"bool true", BoolValue(true), "bool    true"},
		{"bool false", BoolValue(false), "bool    false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderText(t, []DecodedValue{tt.value}, "")
			assert.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestRenderNilInteger(t *testing.T) {
	// A zero-value integer carries a nil Big and renders as zero.
	got := renderText(t, []DecodedValue{UintValue(nil), IntValue(nil)}, "")
	assert.Equal(t, []string{
		"uint    0",
		"int     0",
	}, got)
}

func TestRenderPrefix(t *testing.T) {
	got := renderText(t, []DecodedValue{BoolValue(true)}, ">> ")
	assert.Equal(t, []string{">> bool    true"}, got)
}

func TestRenderBytes(t *testing.T) {
	t.Run("32 bytes is one chunk", func(t *testing.T) {
		got := renderText(t, []DecodedValue{BytesValue(make([]byte, 32))}, "")
		require.Len(t, got, 1)
		assert.Equal(t, "bytes   0x"+strings.Repeat("00", 32), got[0])
	})

	t.Run("65 bytes is three chunks", func(t *testing.T) {
		data := make([]byte, 65)
		for i := range data {
			data[i] = 0xab
		}

		lines, err := Render([]DecodedValue{FixedBytesValue(data)}, "")
		require.NoError(t, err)
		require.Len(t, lines, 3)

		assert.Equal(t, "bytes   0x"+strings.Repeat("ab", 32), lines[0].Text)
		assert.Equal(t, "bytes", lines[0].Tag)

		// Continuation lines carry no tag and align under the first chunk.
		assert.Equal(t, strings.Repeat(" ", 10)+strings.Repeat("ab", 32), lines[1].Text)
		assert.Empty(t, lines[1].Tag)
		assert.Equal(t, strings.Repeat(" ", 10)+"ab", lines[2].Text)
		assert.Empty(t, lines[2].Tag)
	})

	t.Run("empty bytes", func(t *testing.T) {
		got := renderText(t, []DecodedValue{BytesValue(nil)}, "")
		assert.Equal(t, []string{"bytes   0x"}, got)
	})
}

func TestRenderComposites(t *testing.T) {
	t.Run("empty array", func(t *testing.T) {
		got := renderText(t, []DecodedValue{ArrayValue()}, "  ")
		assert.Equal(t, []string{"  []"}, got)
	})

	t.Run("empty tuple", func(t *testing.T) {
		got := renderText(t, []DecodedValue{TupleValue()}, "")
		assert.Equal(t, []string{"()"}, got)
	})

	t.Run("array of uints", func(t *testing.T) {
		got := renderText(t, []DecodedValue{
			ArrayValue(UintValue(big.NewInt(1)), UintValue(big.NewInt(2))),
		}, "")
		assert.Equal(t, []string{
			"[",
			"   uint    1",
			"   uint    2",
			"]",
		}, got)
	})

	t.Run("tuple nesting indents each level", func(t *testing.T) {
		got := renderText(t, []DecodedValue{
			TupleValue(
				BoolValue(true),
				ArrayValue(StringValue("a")),
			),
		}, "")
		assert.Equal(t, []string{
			"(",
			"   bool    true",
			"   [",
			"      string  a",
			"   ]",
			")",
		}, got)
	})
}

func TestRenderOrderPreserved(t *testing.T) {
	got := renderText(t, []DecodedValue{
		UintValue(big.NewInt(1)),
		StringValue("mid"),
		UintValue(big.NewInt(2)),
	}, "")
	assert.Equal(t, []string{
		"uint    1",
		"string  mid",
		"uint    2",
	}, got)
}

func TestRenderDepthBound(t *testing.T) {
	v := UintValue(big.NewInt(1))
	for i := 0; i < 70; i++ {
		v = ArrayValue(v)
	}

	_, err := Render([]DecodedValue{v}, "")
	assert.ErrorIs(t, err, ErrBounds)

	_, err = Render([]DecodedValue{ArrayValue(ArrayValue(BoolValue(true)))}, "", WithMaxDepth(1))
	assert.ErrorIs(t, err, ErrBounds)
}

func TestStyled(t *testing.T) {
	// With color disabled the adapter must reproduce the plain lines.
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	lines, err := Render([]DecodedValue{
		ArrayValue(UintValue(big.NewInt(7))),
	}, "")
	require.NoError(t, err)

	styled := Styled(lines)
	require.Len(t, styled, len(lines))
	for i, l := range lines {
		assert.Equal(t, l.Text, styled[i])
	}
}
