package cpu

import (
	"fmt"
)

// Instruction is a single decoded operation and its operands.
type Instruction struct {
	Op   Op     // Decoded operation.
	Reg  byte   // Register field (low nibble of the opcode byte).
	Imm  byte   // Immediate byte, for 2-byte operations.
	Addr uint16 // Big-endian address, for 3-byte operations.
}

// Decode decodes an instruction from the start of data.
// Returns ok=false if data is too short to hold the full instruction.
func Decode(data []byte) (inst Instruction, ok bool) {
	if len(data) < 1 {
		return
	}

	inst.Op = OpForByte(data[0])
	inst.Reg = data[0] & 0x0f

	length := inst.Op.Length()
	if len(data) < length {
		return
	}

	switch length {
	case 2:
		inst.Imm = data[1]
	case 3:
		inst.Addr = uint16(data[1])<<8 | uint16(data[2])
	}

	ok = true
	return
}

// Length returns the encoded length of the instruction, in bytes.
func (inst Instruction) Length() int {
	return inst.Op.Length()
}

// String returns the instruction in assembly form.
func (inst Instruction) String() (text string) {
	text = inst.Op.Mnemonic()
	switch inst.Op.Kind() {
	case KIND_REGISTER:
		text += fmt.Sprintf(" R%X", inst.Reg)
	case KIND_IMMEDIATE, KIND_BRANCH:
		text += fmt.Sprintf(" 0x%02X", inst.Imm)
	case KIND_ADDRESS:
		text += fmt.Sprintf(" 0x%04X", inst.Addr)
	}

	return
}
