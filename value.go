package evmtypes

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
)

// DecodedValue is a concrete decoded argument, a tagged union mirroring
// Param. Which fields are meaningful depends on Kind. Value trees are
// immutable once built and consumed read-only by Render.
type DecodedValue struct {
	Kind Kind

	// Addr holds the value for KindAddress.
	Addr common.Address

	// Big holds the integer for KindInt and KindUint.
	Big *big.Int

	// Str holds the text for KindString.
	Str string

	// Bool holds the value for KindBool.
	Bool bool

	// Bytes holds the data for KindBytes and KindFixedBytes.
	Bytes []byte

	// Elems holds the ordered nested values for KindArray, KindFixedArray
	// and KindTuple.
	Elems []DecodedValue
}

// AddressValue wraps an address.
func AddressValue(a common.Address) DecodedValue {
	return DecodedValue{Kind: KindAddress, Addr: a}
}

// UintValue wraps an unsigned integer.
func UintValue(v *big.Int) DecodedValue {
	return DecodedValue{Kind: KindUint, Big: v}
}

// IntValue wraps a signed integer.
func IntValue(v *big.Int) DecodedValue {
	return DecodedValue{Kind: KindInt, Big: v}
}

// StringValue wraps literal text.
func StringValue(s string) DecodedValue {
	return DecodedValue{Kind: KindString, Str: s}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) DecodedValue {
	return DecodedValue{Kind: KindBool, Bool: b}
}

// BytesValue wraps a dynamic byte sequence.
func BytesValue(b []byte) DecodedValue {
	return DecodedValue{Kind: KindBytes, Bytes: b}
}

// FixedBytesValue wraps a fixed-size byte sequence.
func FixedBytesValue(b []byte) DecodedValue {
	return DecodedValue{Kind: KindFixedBytes, Bytes: b}
}

// ArrayValue wraps ordered array elements.
func ArrayValue(elems ...DecodedValue) DecodedValue {
	return DecodedValue{Kind: KindArray, Elems: elems}
}

// TupleValue wraps ordered tuple fields.
func TupleValue(elems ...DecodedValue) DecodedValue {
	return DecodedValue{Kind: KindTuple, Elems: elems}
}

// DecodeArguments unpacks ABI-encoded argument data against an ordered
// parameter list and lifts the result into the DecodedValue model. Unpack
// failures from the abi layer surface as SerializationError; values whose
// Go shape does not match the descriptor surface as ErrDecode.
func DecodeArguments(params []Param, data []byte) ([]DecodedValue, error) {
	args, err := Arguments(params)
	if err != nil {
		return nil, err
	}

	unpacked, err := args.Unpack(data)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	if len(unpacked) != len(params) {
		return nil, fmt.Errorf("evmtypes: decoded %d values for %d parameters: %w", len(unpacked), len(params), ErrDecode)
	}

	values := make([]DecodedValue, len(params))
	for i, v := range unpacked {
		dv, err := fromABIValue(params[i], v)
		if err != nil {
			return nil, err
		}
		values[i] = dv
	}
	return values, nil
}

// fromABIValue converts one go-ethereum unpacked value into the model.
// go-ethereum returns sized Go integers for widths up to 64 bits, *big.Int
// above, reflect-built arrays/slices for array types and anonymous structs
// for tuples.
func fromABIValue(p Param, v any) (DecodedValue, error) {
	switch p.Kind {
	case KindAddress:
		a, ok := v.(common.Address)
		if !ok {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		return AddressValue(a), nil

	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		return BoolValue(b), nil

	case KindString:
		s, ok := v.(string)
		if !ok {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		return StringValue(s), nil

	case KindBytes:
		b, ok := v.([]byte)
		if !ok {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		return BytesValue(b), nil

	case KindFixedBytes:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return FixedBytesValue(b), nil

	case KindUint, KindInt:
		n, err := toBig(v)
		if err != nil {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		if p.Kind == KindUint {
			return UintValue(n), nil
		}
		return IntValue(n), nil

	case KindArray, KindFixedArray:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		elems := make([]DecodedValue, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			dv, err := fromABIValue(*p.Elem, rv.Index(i).Interface())
			if err != nil {
				return DecodedValue{}, err
			}
			elems[i] = dv
		}
		return DecodedValue{Kind: p.Kind, Elems: elems}, nil

	case KindTuple:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Struct || rv.NumField() != len(p.Tuple) {
			return DecodedValue{}, decodeMismatch(p, v)
		}
		elems := make([]DecodedValue, len(p.Tuple))
		for i, f := range p.Tuple {
			dv, err := fromABIValue(f, rv.Field(i).Interface())
			if err != nil {
				return DecodedValue{}, err
			}
			elems[i] = dv
		}
		return TupleValue(elems...), nil

	default:
		return DecodedValue{}, decodeMismatch(p, v)
	}
}

// toBig normalizes the integer representations the abi layer produces.
func toBig(v any) (*big.Int, error) {
	if n, ok := v.(*big.Int); ok {
		return n, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), nil
	}
	return nil, fmt.Errorf("evmtypes: %T is not an integer: %w", v, ErrDecode)
}

func decodeMismatch(p Param, v any) error {
	return fmt.Errorf("evmtypes: unexpected %T for %s: %w", v, p.String(), ErrDecode)
}
