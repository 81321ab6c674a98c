package evmtypes

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamString(t *testing.T) {
	tests := []struct {
		param Param
		want  string
	}{
		{Address, "address"},
		{Bool, "bool"},
		{String, "string"},
		{Bytes, "bytes"},
		{FixedBytes(32), "bytes32"},
		{Uint(256), "uint256"},
		{Int(24), "int24"},
		{Array(String), "string[]"},
		{FixedArray(Uint(256), 3), "uint256[3]"},
		{Tuple(Address, Uint(24)), "(address,uint24)"},
		{Array(Tuple(Uint(256), Uint(256))), "(uint256,uint256)[]"},
		{FixedArray(Tuple(Address, Bool), 2), "(address,bool)[2]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.param.String())
		})
	}
}

func TestParamStringRoundTrip(t *testing.T) {
	// Canonical text re-parses to the same descriptor.
	params := []Param{
		Uint(160),
		Array(Tuple(Uint(256), Address)),
		FixedArray(FixedBytes(8), 4),
		Tuple(String, Array(Bool)),
	}

	for _, p := range params {
		t.Run(p.String(), func(t *testing.T) {
			got, err := ParseSignature("(" + p.String() + ")")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, p, got[0])
		})
	}
}

func TestParamIsDynamic(t *testing.T) {
	tests := []struct {
		param Param
		want  bool
	}{
		{Address, false},
		{Bool, false},
		{Uint(256), false},
		{FixedBytes(32), false},
		{String, true},
		{Bytes, true},
		{Array(Uint(256)), true},
		{FixedArray(Uint(256), 3), false},
		{FixedArray(String, 3), true},
		{Tuple(Address, Uint(256)), false},
		{Tuple(Address, String), true},
	}

	for _, tt := range tests {
		t.Run(tt.param.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.param.IsDynamic())
		})
	}
}

func TestParamABIType(t *testing.T) {
	tests := []struct {
		param Param
		want  byte // abi.Type.T
	}{
		{Address, abi.AddressTy},
		{Bool, abi.BoolTy},
		{String, abi.StringTy},
		{Bytes, abi.BytesTy},
		{FixedBytes(32), abi.FixedBytesTy},
		{Uint(256), abi.UintTy},
		{Int(24), abi.IntTy},
		{Array(Uint(256)), abi.SliceTy},
		{FixedArray(Uint(256), 3), abi.ArrayTy},
		{Tuple(Address, Uint(256)), abi.TupleTy},
	}

	for _, tt := range tests {
		t.Run(tt.param.String(), func(t *testing.T) {
			got, err := tt.param.ABIType()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.T)
		})
	}
}

func TestParamABITypeNested(t *testing.T) {
	// Tuples bridge through component marshaling, including inside arrays.
	got, err := Array(Tuple(Uint(256), Address)).ABIType()
	require.NoError(t, err)
	assert.Equal(t, byte(abi.SliceTy), got.T)
	require.NotNil(t, got.Elem)
	assert.Equal(t, byte(abi.TupleTy), got.Elem.T)
	require.Len(t, got.Elem.TupleElems, 2)
	assert.Equal(t, byte(abi.UintTy), got.Elem.TupleElems[0].T)
	assert.Equal(t, byte(abi.AddressTy), got.Elem.TupleElems[1].T)
}

func TestArguments(t *testing.T) {
	args, err := Arguments([]Param{Uint(256), Address})
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, "uint256", args[0].Type.String())
	assert.Equal(t, "address", args[1].Type.String())
}
