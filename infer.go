package evmtypes

import (
	"fmt"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

// nativeWordSize is the EVM word size in bytes, the default width when no
// narrowing mask is detected.
const nativeWordSize = 32

// InferBitmask inspects an instruction whose output was produced by a
// bitwise AND or OR over a calldata-derived value and returns ranked
// Solidity type candidates for the masked byte width, most specific first.
//
// An AND preserves exactly its fully-set bytes, so their count approximates
// the value's true width; an OR merges the real value into its fully-clear
// bytes, so those count symmetrically. The result is empty when the
// instruction is not a mask, when no operand derives from call input, or
// when the mask does not narrow below the native word size. InferBitmask
// never returns an error; absence of information is the empty result.
func InferBitmask(ins *Instruction, opts ...Option) []string {
	cfg := apply(opts)

	mask := maskExpression(ins)
	if mask == nil {
		return nil
	}

	// Locate the calldata-derived operand; its sibling raw word is the mask
	// constant.
	loaded := -1
	for i, op := range mask.Inputs {
		expr, ok := op.(ExprOperand)
		if !ok {
			continue
		}
		if derivedFromCalldata(expr.Expr, 0, cfg) {
			loaded = i
			break
		}
	}
	if loaded < 0 {
		return nil
	}

	width := nativeWordSize
	for i, op := range mask.Inputs {
		raw, ok := op.(RawOperand)
		if i == loaded || !ok || raw.Word == nil {
			continue
		}
		width = maskWidth(mask.Op, raw.Word)
		break
	}

	return widthCandidates(width)
}

// maskExpression resolves the AND/OR node carrying expression operands:
// the instruction itself when it is already in lifted form, otherwise the
// lifted expression in its first output.
func maskExpression(ins *Instruction) *Instruction {
	if ins == nil {
		return nil
	}
	if isMaskOp(ins.Op) && hasExprInput(ins) {
		return ins
	}
	if len(ins.Outputs) > 0 {
		if expr, ok := ins.Outputs[0].(ExprOperand); ok && expr.Expr != nil && isMaskOp(expr.Expr.Op) {
			return expr.Expr
		}
	}
	return nil
}

func isMaskOp(op vm.OpCode) bool {
	return op == vm.AND || op == vm.OR
}

func hasExprInput(ins *Instruction) bool {
	for _, op := range ins.Inputs {
		if _, ok := op.(ExprOperand); ok {
			return true
		}
	}
	return false
}

// derivedFromCalldata reports whether any opcode in the expression tree
// loads from call input. The walk is depth-bounded; past the ceiling the
// operand is treated as unknown rather than erroring.
func derivedFromCalldata(ins *Instruction, depth int, cfg *config) bool {
	if ins == nil || depth > cfg.maxDepth {
		return false
	}
	if ins.Op == vm.CALLDATALOAD || ins.Op == vm.CALLDATACOPY {
		return true
	}
	for _, op := range ins.Inputs {
		if expr, ok := op.(ExprOperand); ok && derivedFromCalldata(expr.Expr, depth+1, cfg) {
			return true
		}
	}
	return false
}

// maskWidth counts the meaningful byte groups of a mask word: fully-set
// bytes for AND, fully-clear bytes for OR.
func maskWidth(op vm.OpCode, mask *uint256.Int) int {
	bytes := mask.Bytes32()
	width := 0
	for _, b := range bytes {
		switch {
		case op == vm.AND && b == 0xff:
			width++
		case op == vm.OR && b == 0x00:
			width++
		}
	}
	return width
}

// widthCandidates maps a masked byte width to ranked Solidity type names.
// Widths with a canonical single type rank it first: 20 bytes is almost
// always an address, a single byte is usually a bool. The unsigned integer
// ranks ahead of fixed bytes and signed, matching how masks are used in
// practice.
func widthCandidates(width int) []string {
	if width <= 0 || width >= nativeWordSize {
		return nil
	}

	var types []string
	switch width {
	case 20:
		types = append(types, "address")
	case 1:
		types = append(types, "bool")
	}
	return append(types,
		fmt.Sprintf("uint%d", width*8),
		fmt.Sprintf("bytes%d", width),
		fmt.Sprintf("int%d", width*8),
	)
}
