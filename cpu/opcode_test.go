package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTotality(t *testing.T) {
	assert := assert.New(t)

	for b := 0; b < 256; b++ {
		op := OpForByte(byte(b))
		length := op.Length()
		assert.GreaterOrEqual(length, 1, "byte 0x%02x", b)
		assert.LessOrEqual(length, 3, "byte 0x%02x", b)
		assert.NotEmpty(op.Mnemonic(), "byte 0x%02x", b)
	}
}

func TestOpcodeDecode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(OP_IDL, OpForByte(0x00))
	assert.Equal(OP_LDN, OpForByte(0x01))
	assert.Equal(OP_LDN, OpForByte(0x0F))
	assert.Equal(OP_INC, OpForByte(0x17))
	assert.Equal(OP_DEC, OpForByte(0x2A))
	assert.Equal(OP_BR, OpForByte(0x30))
	assert.Equal(OP_SKP, OpForByte(0x38))
	assert.Equal(OP_BN4, OpForByte(0x3F))
	assert.Equal(OP_LDA, OpForByte(0x45))
	assert.Equal(OP_STR, OpForByte(0x52))
	assert.Equal(OP_IRX, OpForByte(0x60))
	assert.Equal(OP_OUT, OpForByte(0x61))
	assert.Equal(OP_OUT, OpForByte(0x67))
	assert.Equal(OP_IRX, OpForByte(0x68))
	assert.Equal(OP_INP, OpForByte(0x69))
	assert.Equal(OP_INP, OpForByte(0x6F))
	assert.Equal(OP_RET, OpForByte(0x70))
	assert.Equal(OP_SMBI, OpForByte(0x7F))
	assert.Equal(OP_GLO, OpForByte(0x85))
	assert.Equal(OP_GHI, OpForByte(0x97))
	assert.Equal(OP_PLO, OpForByte(0xA0))
	assert.Equal(OP_PHI, OpForByte(0xBF))
	assert.Equal(OP_LBR, OpForByte(0xC0))
	assert.Equal(OP_NOP, OpForByte(0xC4))
	assert.Equal(OP_LSDF, OpForByte(0xCF))
	assert.Equal(OP_SEP, OpForByte(0xD3))
	assert.Equal(OP_SEX, OpForByte(0xE2))
	assert.Equal(OP_LDX, OpForByte(0xF0))
	assert.Equal(OP_SMI, OpForByte(0xFF))
}

func TestOpcodeLength(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, OP_IDL.Length())
	assert.Equal(1, OP_LDN.Length())
	assert.Equal(2, OP_BR.Length())
	assert.Equal(2, OP_LDI.Length())
	assert.Equal(2, OP_SHLC.Length())
	assert.Equal(3, OP_LBR.Length())
	assert.Equal(3, OP_LSKP.Length())
	assert.Equal(1, OP_NOP.Length())
	assert.Equal(1, OP_SHL.Length())
	assert.Equal(2, OP_SMI.Length())
}

func TestOpcodeMnemonic(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("IDL", OP_IDL.Mnemonic())
	assert.Equal("LBDF", OP_LBDF.Mnemonic())
	assert.Equal("SHRC", OP_SHRC.Mnemonic())
	assert.Equal("SMI", OP_SMI.Mnemonic())

	for op := range opTable {
		other, ok := mnemonicOp[op.Mnemonic()]
		assert.True(ok, op.Mnemonic())
		assert.Equal(op, other, op.Mnemonic())
	}
}
