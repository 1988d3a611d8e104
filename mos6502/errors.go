package mos6502

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedInstruction matches any UndefinedInstructionError.
	ErrUndefinedInstruction = errors.New("undefined instruction")
	// ErrHalted is returned by Step once the cpu has been halted.
	ErrHalted = errors.New("cpu halted")
)

// UndefinedInstructionError reports an opcode with no table entry,
// with enough context to replay the fault from the same memory image.
type UndefinedInstructionError struct {
	Opcode uint8
	PC     uint16 // address the opcode was fetched from
	Cycles uint64 // cycles completed before the fetch
}

func (e *UndefinedInstructionError) Error() string {
	return fmt.Sprintf("undefined instruction $%02X at $%04X (cycle %d)", e.Opcode, e.PC, e.Cycles)
}

func (e *UndefinedInstructionError) Is(target error) bool {
	return target == ErrUndefinedInstruction
}
