package cpu

import (
	"errors"

	"github.com/ezrec/cosmac/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted = errors.New(f("halted"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrRegisterMissing = errors.New(f("register missing"))
	ErrValueMissing    = errors.New(f("value missing"))
	ErrTargetMissing   = errors.New(f("target missing"))
)

type ErrRegisterRange byte

func (err ErrRegisterRange) Error() string {
	return f("register %v out of range", byte(err))
}

type ErrAddressRange int

func (err ErrAddressRange) Error() string {
	return f("address 0x%x out of range", int(err))
}

type ErrBadOpcode uint16

func (err ErrBadOpcode) Error() string {
	return f("bad opcode at 0x%04x", uint16(err))
}

type ErrBadMnemonic string

func (err ErrBadMnemonic) Error() string {
	return f("'%v' is not a mnemonic", string(err))
}

type ErrBadRegister string

func (err ErrBadRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
