package evmtypes

import (
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

// Instruction is one decoded VM operation reconstructed by the
// symbolic-execution engine: an opcode identity plus ordered operand
// expression trees for its inputs and outputs. Instances are owned by the
// engine; this package borrows them read-only for the duration of a call
// and never mutates or retains them.
type Instruction struct {
	Op      vm.OpCode
	Inputs  []Operand
	Outputs []Operand
}

// Operand is one input or output of an Instruction: either a raw 256-bit
// word or a nested Instruction forming an expression tree. The interface
// is sealed.
type Operand interface {
	isOperand()
}

// RawOperand is a constant 256-bit word.
type RawOperand struct {
	Word *uint256.Int
}

func (RawOperand) isOperand() {}

// ExprOperand is a nested instruction whose result feeds the parent.
type ExprOperand struct {
	Expr *Instruction
}

func (ExprOperand) isOperand() {}

// Raw wraps a word as an operand.
func Raw(word *uint256.Int) RawOperand {
	return RawOperand{Word: word}
}

// Expr wraps a nested instruction as an operand.
func Expr(ins *Instruction) ExprOperand {
	return ExprOperand{Expr: ins}
}
