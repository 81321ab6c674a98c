package evmtypes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Kind identifies the variant of a Param descriptor.
type Kind uint8

const (
	KindAddress Kind = iota
	KindBool
	KindString
	KindBytes
	KindFixedBytes
	KindInt
	KindUint
	KindArray
	KindFixedArray
	KindTuple
)

// Param describes a single ABI parameter type. It is a tagged union over
// the Solidity type grammar; which fields are meaningful depends on Kind.
// Descriptor trees are built bottom-up and immutable thereafter.
type Param struct {
	Kind Kind

	// Bits is the width in bits for KindInt and KindUint.
	Bits int

	// Size is the byte size for KindFixedBytes, or the element count for
	// KindFixedArray.
	Size int

	// Elem is the element type for KindArray and KindFixedArray.
	Elem *Param

	// Tuple holds the ordered field types for KindTuple.
	Tuple []Param
}

// Scalar type descriptors.
var (
	Address = Param{Kind: KindAddress}
	Bool    = Param{Kind: KindBool}
	String  = Param{Kind: KindString}
	Bytes   = Param{Kind: KindBytes}
)

// Uint returns a uintN descriptor for the given bit width.
func Uint(bits int) Param {
	return Param{Kind: KindUint, Bits: bits}
}

// Int returns an intN descriptor for the given bit width.
func Int(bits int) Param {
	return Param{Kind: KindInt, Bits: bits}
}

// FixedBytes returns a bytesN descriptor for the given byte size.
func FixedBytes(size int) Param {
	return Param{Kind: KindFixedBytes, Size: size}
}

// Array returns a dynamic-length array descriptor over elem.
func Array(elem Param) Param {
	return Param{Kind: KindArray, Elem: &elem}
}

// FixedArray returns a fixed-length array descriptor over elem.
func FixedArray(elem Param, size int) Param {
	return Param{Kind: KindFixedArray, Size: size, Elem: &elem}
}

// Tuple returns a tuple descriptor with the given ordered field types.
func Tuple(fields ...Param) Param {
	return Param{Kind: KindTuple, Tuple: fields}
}

// String returns the canonical Solidity text for the type, e.g. "uint256"
// or "(address,uint24)[3]".
func (p Param) String() string {
	switch p.Kind {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(p.Size)
	case KindInt:
		return "int" + strconv.Itoa(p.Bits)
	case KindUint:
		return "uint" + strconv.Itoa(p.Bits)
	case KindArray:
		return p.Elem.String() + "[]"
	case KindFixedArray:
		return p.Elem.String() + "[" + strconv.Itoa(p.Size) + "]"
	case KindTuple:
		fields := make([]string, len(p.Tuple))
		for i, f := range p.Tuple {
			fields[i] = f.String()
		}
		return "(" + strings.Join(fields, ",") + ")"
	default:
		return "unknown"
	}
}

// IsDynamic returns true if the type has a variable-length ABI encoding
// (string, bytes, dynamic arrays, or composites containing one).
func (p Param) IsDynamic() bool {
	switch p.Kind {
	case KindString, KindBytes, KindArray:
		return true
	case KindFixedArray:
		return p.Elem.IsDynamic()
	case KindTuple:
		for _, f := range p.Tuple {
			if f.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ABIType converts the descriptor into a go-ethereum abi.Type for use with
// byte-level encode/decode routines. Tuples are bridged through component
// marshaling with positional field names.
func (p Param) ABIType() (abi.Type, error) {
	m := p.marshaling("arg")
	t, err := abi.NewType(m.Type, "", m.Components)
	if err != nil {
		return abi.Type{}, &SerializationError{Err: err}
	}
	return t, nil
}

// marshaling builds the abi.ArgumentMarshaling form of the descriptor.
// Array suffixes are appended to the base type text; tuple fields receive
// positional names, which go-ethereum requires for struct construction.
func (p Param) marshaling(name string) abi.ArgumentMarshaling {
	switch p.Kind {
	case KindArray:
		m := p.Elem.marshaling(name)
		m.Type += "[]"
		return m
	case KindFixedArray:
		m := p.Elem.marshaling(name)
		m.Type += fmt.Sprintf("[%d]", p.Size)
		return m
	case KindTuple:
		comps := make([]abi.ArgumentMarshaling, len(p.Tuple))
		for i, f := range p.Tuple {
			comps[i] = f.marshaling(fmt.Sprintf("field%d", i))
		}
		return abi.ArgumentMarshaling{Name: name, Type: "tuple", Components: comps}
	default:
		return abi.ArgumentMarshaling{Name: name, Type: p.String()}
	}
}

// Arguments converts an ordered parameter list into abi.Arguments.
func Arguments(params []Param) (abi.Arguments, error) {
	args := make(abi.Arguments, len(params))
	for i, p := range params {
		t, err := p.ABIType()
		if err != nil {
			return nil, err
		}
		args[i] = abi.Argument{Name: fmt.Sprintf("arg%d", i), Type: t}
	}
	return args, nil
}
