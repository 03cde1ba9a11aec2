package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xF8, 0x42})
	f.Add([]byte{0xC0, 0x12, 0x34})

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		inst, ok := Decode(data)
		if !ok {
			// Every byte value decodes once enough bytes are present.
			assert.Less(len(data), 3)
			return
		}

		length := inst.Length()
		assert.GreaterOrEqual(length, 1)
		assert.LessOrEqual(length, 3)
		assert.LessOrEqual(length, len(data))
		assert.NotEmpty(inst.String())
	})
}

func FuzzCpu(f *testing.F) {
	for op := range 16 {
		f.Add(uint8(op<<4), uint8(0x12), uint8(0x34))
	}
	f.Add(uint8(0xc0), uint8(0xff), uint8(0xff))

	f.Fuzz(func(t *testing.T, opcode uint8, lo uint8, hi uint8) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.D = 0x5a
		cpu.DF = true
		cpu.X = 2
		cpu.Reg[1] = 0x0123
		cpu.Reg[2] = 0x2000
		cpu.WriteByte(0x2000, 0x99)

		err := cpu.LoadProgram(0x0100, []byte{opcode, lo, hi})
		assert.NoError(err)
		cpu.SetPc(0x0100)

		cycles := cpu.Cycles
		instructions := cpu.Instructions

		err = cpu.Step()
		state := fmt.Sprintf("%02x %02x %02x\n%v", opcode, lo, hi, cpu.String())

		assert.NoError(err, state)
		assert.Equal(cycles+1, cpu.Cycles, state)
		assert.Equal(instructions+1, cpu.Instructions, state)

		if cpu.Halted {
			assert.Equal(OP_IDL, OpForByte(opcode), state)

			err = cpu.Step()
			assert.ErrorIs(err, ErrHalted, state)
			assert.Equal(cycles+1, cpu.Cycles, state)
		}
	})
}
