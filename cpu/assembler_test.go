package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doAssemble(t *testing.T, program ...string) (prog *Assembly) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	return
}

func TestAssemblerImmediate(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"LDI 0x42",
		"PHI R5",
		"IDL",
	)
	assert.Equal([]byte{0xF8, 0x42, 0xB5, 0x00}, prog.Code)
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"START: LDI 0x10",
		"PHI R3",
		"BR START",
	)
	assert.Equal([]byte{0xF8, 0x10, 0xB3, 0x30, 0x00}, prog.Code)

	prog = doAssemble(t,
		"NOP",
		"LBR DONE",
		"NOP",
		"DONE: IDL",
	)
	assert.Equal([]byte{0xC4, 0xC0, 0x00, 0x05, 0xC4, 0x00}, prog.Code)
}

func TestAssemblerRegisters(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"INC R3",
		"DEC RA",
		"GLO R5",
		"GHI R7",
		"SEP RD",
		"SEX R2",
	)
	assert.Equal([]byte{0x13, 0x2A, 0x85, 0x97, 0xDD, 0xE2}, prog.Code)
}

func TestAssemblerLongBranch(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t, "LBR 0x1234")
	assert.Equal([]byte{0xC0, 0x12, 0x34}, prog.Code)
}

func TestAssemblerComments(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"LDI 0x01 ; load one",
		"# a whole-line comment",
		"; another",
		"",
		"IDL",
	)
	assert.Equal([]byte{0xF8, 0x01, 0x00}, prog.Code)
}

func TestAssemblerNumbers(t *testing.T) {
	assert := assert.New(t)

	// $-prefixed and bare hex digits both read as hexadecimal.
	prog := doAssemble(t, "LDI $FF")
	assert.Equal([]byte{0xF8, 0xFF}, prog.Code)

	prog = doAssemble(t, "LDI FF")
	assert.Equal([]byte{0xF8, 0xFF}, prog.Code)

	prog = doAssemble(t, "ADI 25")
	assert.Equal([]byte{0xFC, 0x25}, prog.Code)

	prog = doAssemble(t, "LDI 0x42")
	assert.Equal([]byte{0xF8, 0x42}, prog.Code)
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		".equ VALUE 0x42",
		"LDI VALUE",
		"IDL",
	)
	assert.Equal([]byte{0xF8, 0x42, 0x00}, prog.Code)

	asm := &Assembler{}
	_, err := asm.Assemble(strings.NewReader(strings.Join([]string{
		".equ VALUE 0x42",
		".equ VALUE 0x43",
	}, "\n")))
	assert.ErrorIs(err, ErrEquateDuplicate)

	_, err = asm.Assemble(strings.NewReader(".equ VALUE"))
	assert.ErrorIs(err, ErrEquateSyntax)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("PORT", "0x07")
	prog, err := asm.Assemble(strings.NewReader("LDI PORT"))
	assert.NoError(err)
	assert.Equal([]byte{0xF8, 0x07}, prog.Code)
}

func TestAssemblerExpressions(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		".equ BASE 0x40",
		"LDI $(BASE + 2)",
		"IDL",
	)
	assert.Equal([]byte{0xF8, 0x42, 0x00}, prog.Code)

	// Labels are visible inside expressions.
	prog = doAssemble(t,
		"NOP",
		"LOOP: LDI $(LOOP + 1)",
		"IDL",
	)
	assert.Equal([]byte{0xC4, 0xF8, 0x02, 0x00}, prog.Code)

	asm := &Assembler{}
	_, err := asm.Assemble(strings.NewReader("LDI $(nonsense +)"))
	assert.Error(err)
}

func TestAssemblerDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	// A repeated label takes the later address.
	prog := doAssemble(t,
		"X: NOP",
		"X: IDL",
		"BR X",
	)
	assert.Equal([]byte{0xC4, 0x00, 0x30, 0x01}, prog.Code)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Assemble(strings.NewReader("FNORD R1"))
	var badMnemonic ErrBadMnemonic
	assert.ErrorAs(err, &badMnemonic)

	var syntax *ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Equal(1, syntax.LineNo)

	_, err = asm.Assemble(strings.NewReader("BR NOWHERE"))
	var badNumber ErrParseNumber
	assert.ErrorAs(err, &badNumber)

	_, err = asm.Assemble(strings.NewReader("INC R16"))
	var badRegister ErrBadRegister
	assert.ErrorAs(err, &badRegister)

	_, err = asm.Assemble(strings.NewReader("INC"))
	assert.ErrorIs(err, ErrRegisterMissing)

	_, err = asm.Assemble(strings.NewReader("LDI"))
	assert.ErrorIs(err, ErrValueMissing)

	_, err = asm.Assemble(strings.NewReader("BR"))
	assert.ErrorIs(err, ErrTargetMissing)
}

func TestAssemblerShlc(t *testing.T) {
	assert := assert.New(t)

	// SHLC carries a value byte in its encoding.
	prog := doAssemble(t, "SHLC 0x00")
	assert.Equal([]byte{0x7E, 0x00}, prog.Code)
}

func TestAssemblerPorts(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"OUT 1",
		"INP 1",
		"OUT 7",
	)
	assert.Equal([]byte{0x61, 0x69, 0x67}, prog.Code)
}

func TestAssemblerListing(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"START: LDI 0x42 ; the answer",
		"LBR 0x1234",
		"IDL",
	)

	lines := prog.Disassembly()
	assert.Equal([]string{
		"0000: F8 42    | LDI 0x42",
		"0002: C0 12 34 | LBR 0x1234",
		"0005: 00       | IDL",
	}, lines)

	l := prog.At(0x0003)
	assert.NotNil(l)
	assert.Equal(2, l.LineNo)
	assert.Equal(uint16(0x0002), l.Addr)

	assert.Nil(prog.At(0x0006))
}

func TestAssemblerExtraOperands(t *testing.T) {
	assert := assert.New(t)

	// Operand words past those the instruction needs are ignored.
	prog := doAssemble(t, "LDI 0x42 0x43")
	assert.Equal([]byte{0xF8, 0x42}, prog.Code)
}

func TestAssemblerLabelNoSpace(t *testing.T) {
	assert := assert.New(t)

	// The colon alone separates a label from its instruction.
	prog := doAssemble(t,
		"START:LDI 0x10",
		"BR START",
	)
	assert.Equal([]byte{0xF8, 0x10, 0x30, 0x00}, prog.Code)
}

func TestAssemblerWideNumbers(t *testing.T) {
	assert := assert.New(t)

	// Bare hex digits past 16 bits fall back to a decimal reading.
	prog := doAssemble(t, "LBR 12345")
	assert.Equal([]byte{0xC0, 0x30, 0x39}, prog.Code)

	asm := &Assembler{}
	var badNumber ErrParseNumber

	_, err := asm.Assemble(strings.NewReader("LBR 0x12345"))
	assert.ErrorAs(err, &badNumber)

	_, err = asm.Assemble(strings.NewReader("LBR 99999"))
	assert.ErrorAs(err, &badNumber)
}

func TestAssemblerListingSource(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		".equ BASE 0x40",
		"HERE: LDI $(BASE + 2)",
		"IDL",
	)
	assert.Equal([]byte{0xF8, 0x42, 0x00}, prog.Code)

	// The listing keeps the instruction as written, not as expanded.
	assert.Equal("LDI $(BASE + 2)", prog.Listing[0].Source)
	assert.Equal("0000: F8 42    | LDI $(BASE + 2)", prog.Listing[0].String())
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		".macro LOADR rn value",
		"LDI value",
		"PLO rn",
		".endm",
		"LOADR R1 0x10",
		"LOADR R2 0x20",
		"IDL",
	)
	assert.Equal([]byte{0xF8, 0x10, 0xA1, 0xF8, 0x20, 0xA2, 0x00}, prog.Code)
}

func TestAssemblerMacroLabels(t *testing.T) {
	assert := assert.New(t)

	// Each invocation gets its own copy of the @-prefixed labels.
	prog := doAssemble(t,
		".macro SPIN count",
		"LDI count",
		"@loop: SMI 1",
		"BNZ @loop",
		".endm",
		"SPIN 3",
		"SPIN 2",
		"IDL",
	)
	assert.Equal([]byte{
		0xF8, 0x03, 0xFF, 0x01, 0x3A, 0x02,
		0xF8, 0x02, 0xFF, 0x01, 0x3A, 0x08,
		0x00,
	}, prog.Code)
}

func TestAssemblerMacroErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Assemble(strings.NewReader(strings.Join([]string{
		".macro ONE",
		".macro TWO",
		".endm",
		".endm",
	}, "\n")))
	assert.ErrorIs(err, ErrMacroNesting)

	_, err = asm.Assemble(strings.NewReader(".endm"))
	assert.ErrorIs(err, ErrMacroLonelyEndm)

	_, err = asm.Assemble(strings.NewReader(".macro ONE"))
	assert.ErrorIs(err, ErrMacroLonely)

	_, err = asm.Assemble(strings.NewReader(".macro"))
	assert.ErrorIs(err, ErrMacroSyntax)

	_, err = asm.Assemble(strings.NewReader(strings.Join([]string{
		".macro ONE",
		".endm",
		".macro ONE",
		".endm",
	}, "\n")))
	assert.ErrorIs(err, ErrMacroDuplicate)

	_, err = asm.Assemble(strings.NewReader(strings.Join([]string{
		".macro LOADR rn value",
		"LDI value",
		"PLO rn",
		".endm",
		"LOADR R1",
	}, "\n")))
	assert.ErrorIs(err, ErrMacroSyntax)
}

func TestAssemblerLineNo(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"; header",
		"LDI $(LINENO)",
	)
	assert.Equal([]byte{0xF8, 0x02}, prog.Code)
	assert.Equal(2, prog.Listing[0].LineNo)
}
