// Package evmtypes provides the type-reconstruction core used when
// decompiling EVM smart contract bytecode.
//
// Decompilation never sees source-level type annotations. What it does see
// are function signature strings recovered from selector databases and the
// bit-masking idioms the compiler emits around calldata loads. This package
// turns both into a structured type model:
//
//   - ParseSignature parses a Solidity-style signature string into an
//     ordered list of Param type descriptors, best-effort: unknown tokens
//     are dropped rather than reported, because a partial understanding of
//     a function beats aborting the whole decompilation.
//
//   - Render pretty-prints decoded calldata values as aligned, tagged text
//     lines. Styled wraps those lines in terminal colors.
//
//   - InferBitmask inspects an AND/OR instruction applied to a
//     calldata-derived value and ranks the Solidity types its mask width
//     could correspond to, filling gaps where no signature is known.
//
// # Basic Usage
//
// Parse a signature and decode calldata arguments against it:
//
//	params, err := evmtypes.ParseSignature("transfer(address,uint256)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := evmtypes.DecodeArguments(params, argData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lines, _ := evmtypes.Render(values, "  ")
//	for _, line := range evmtypes.Styled(lines) {
//	    fmt.Println(line)
//	}
//
// # Type Descriptors
//
// Param is a tagged union mirroring the Solidity ABI type grammar: address,
// bool, string, bytes, bytesN, intN, uintN, T[], T[N] and tuples, with
// arbitrary nesting. Descriptor trees are immutable once built and bridge
// to go-ethereum's abi.Type via Param.ABIType for byte-level (de)coding.
//
// # Resource Bounds
//
// Signature strings and decoded value trees come from untrusted contracts.
// Every recursive walk in this package threads an explicit depth counter
// and fails with a DepthError (wrapping ErrBounds) past a configurable
// ceiling; see WithMaxDepth. All exported functions are pure and safe for
// concurrent use.
package evmtypes
