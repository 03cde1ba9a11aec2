package cpu

// add adds two bytes into the accumulator, with DF as carry out.
func (cpu *Cpu) add(a byte, b byte) {
	sum := uint16(a) + uint16(b)
	cpu.D = byte(sum)
	cpu.DF = sum > 0xff
}

// addCarry adds two bytes and the DF carry into the accumulator,
// with DF as carry out.
func (cpu *Cpu) addCarry(a byte, b byte) {
	sum := uint16(a) + uint16(b)
	if cpu.DF {
		sum += 1
	}
	cpu.D = byte(sum)
	cpu.DF = sum > 0xff
}

// subD subtracts the accumulator from a value. DF is set when no
// borrow occurred.
func (cpu *Cpu) subD(value byte) {
	cpu.DF = value >= cpu.D
	cpu.D = value - cpu.D
}

// subMemory subtracts a value from the accumulator. DF is set when no
// borrow occurred.
func (cpu *Cpu) subMemory(value byte) {
	cpu.DF = cpu.D >= value
	cpu.D = cpu.D - value
}

// shortBranch replaces the low byte of the program counter, staying
// within the current page.
func (cpu *Cpu) shortBranch(offset byte) {
	cpu.SetPc(cpu.Pc()&0xff00 | uint16(offset))
}

// Execute executes a single decoded instruction. The program counter
// has already been advanced past the instruction.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	if cpu.Halted {
		return ErrHalted
	}

	n := inst.Reg & 0xf

	switch inst.Op {
	case OP_IDL:
		cpu.Halted = true
	case OP_LDN:
		cpu.D = cpu.ReadByte(cpu.Reg[n])
	case OP_INC:
		cpu.Reg[n] += 1
	case OP_DEC:
		cpu.Reg[n] -= 1
	case OP_BR:
		cpu.shortBranch(inst.Imm)
	case OP_BQ:
		if cpu.Q {
			cpu.shortBranch(inst.Imm)
		}
	case OP_BZ:
		if cpu.D == 0 {
			cpu.shortBranch(inst.Imm)
		}
	case OP_BDF:
		if cpu.DF {
			cpu.shortBranch(inst.Imm)
		}
	case OP_SKP:
		cpu.SetPc(cpu.Pc() + 1)
	case OP_BNQ:
		if !cpu.Q {
			cpu.shortBranch(inst.Imm)
		}
	case OP_BNZ:
		if cpu.D != 0 {
			cpu.shortBranch(inst.Imm)
		}
	case OP_BNF:
		if !cpu.DF {
			cpu.shortBranch(inst.Imm)
		}
	case OP_LDA:
		cpu.D = cpu.ReadByte(cpu.Reg[n])
		cpu.Reg[n] += 1
	case OP_STR:
		cpu.WriteByte(cpu.Reg[n], cpu.D)
	case OP_IRX:
		cpu.SetRx(cpu.Rx() + 1)
	case OP_LDXA:
		cpu.D = cpu.ReadByte(cpu.Rx())
		cpu.SetRx(cpu.Rx() + 1)
	case OP_STXD:
		cpu.WriteByte(cpu.Rx(), cpu.D)
		cpu.SetRx(cpu.Rx() - 1)
	case OP_ADC:
		cpu.addCarry(cpu.D, cpu.ReadByte(cpu.Rx()))
	case OP_SHRC:
		carry := cpu.DF
		cpu.DF = (cpu.D & 0x01) != 0
		cpu.D >>= 1
		if carry {
			cpu.D |= 0x80
		}
	case OP_REQ:
		cpu.Q = false
	case OP_SEQ:
		cpu.Q = true
	case OP_ADCI:
		cpu.addCarry(cpu.D, inst.Imm)
	case OP_SHLC:
		// The immediate byte is assembled but has no effect.
		carry := cpu.DF
		cpu.DF = (cpu.D & 0x80) != 0
		cpu.D <<= 1
		if carry {
			cpu.D |= 0x01
		}
	case OP_GLO:
		cpu.D = byte(cpu.Reg[n])
	case OP_GHI:
		cpu.D = byte(cpu.Reg[n] >> 8)
	case OP_PLO:
		cpu.Reg[n] = cpu.Reg[n]&0xff00 | uint16(cpu.D)
	case OP_PHI:
		cpu.Reg[n] = cpu.Reg[n]&0x00ff | uint16(cpu.D)<<8
	case OP_LBR:
		cpu.SetPc(inst.Addr)
	case OP_LBQ:
		if cpu.Q {
			cpu.SetPc(inst.Addr)
		}
	case OP_LBZ:
		if cpu.D == 0 {
			cpu.SetPc(inst.Addr)
		}
	case OP_LBDF:
		if cpu.DF {
			cpu.SetPc(inst.Addr)
		}
	case OP_LSNQ:
		if !cpu.Q {
			cpu.SetPc(cpu.Pc() + 2)
		}
	case OP_LSNZ:
		if cpu.D != 0 {
			cpu.SetPc(cpu.Pc() + 2)
		}
	case OP_LSNF:
		if !cpu.DF {
			cpu.SetPc(cpu.Pc() + 2)
		}
	case OP_LSKP:
		cpu.SetPc(cpu.Pc() + 2)
	case OP_LBNQ:
		if !cpu.Q {
			cpu.SetPc(inst.Addr)
		}
	case OP_LBNZ:
		if cpu.D != 0 {
			cpu.SetPc(inst.Addr)
		}
	case OP_LBNF:
		if !cpu.DF {
			cpu.SetPc(inst.Addr)
		}
	case OP_LSIE:
		if cpu.IE {
			cpu.SetPc(cpu.Pc() + 2)
		}
	case OP_LSQ:
		if cpu.Q {
			cpu.SetPc(cpu.Pc() + 2)
		}
	case OP_LSZ:
		if cpu.D == 0 {
			cpu.SetPc(cpu.Pc() + 2)
		}
	case OP_LSDF:
		if cpu.DF {
			cpu.SetPc(cpu.Pc() + 2)
		}
	case OP_SEP:
		cpu.P = n
	case OP_SEX:
		cpu.X = n
	case OP_LDX:
		cpu.D = cpu.ReadByte(cpu.Rx())
	case OP_OR:
		cpu.D |= cpu.ReadByte(cpu.Rx())
	case OP_AND:
		cpu.D &= cpu.ReadByte(cpu.Rx())
	case OP_XOR:
		cpu.D ^= cpu.ReadByte(cpu.Rx())
	case OP_ADD:
		cpu.add(cpu.D, cpu.ReadByte(cpu.Rx()))
	case OP_SD:
		cpu.subD(cpu.ReadByte(cpu.Rx()))
	case OP_SHR:
		cpu.DF = (cpu.D & 0x01) != 0
		cpu.D >>= 1
	case OP_SM:
		cpu.subMemory(cpu.ReadByte(cpu.Rx()))
	case OP_LDI:
		cpu.D = inst.Imm
	case OP_ORI:
		cpu.D |= inst.Imm
	case OP_ANI:
		cpu.D &= inst.Imm
	case OP_XRI:
		cpu.D ^= inst.Imm
	case OP_ADI:
		cpu.add(cpu.D, inst.Imm)
	case OP_SDI:
		cpu.subD(inst.Imm)
	case OP_SHL:
		cpu.DF = (cpu.D & 0x80) != 0
		cpu.D <<= 1
	case OP_SMI:
		cpu.subMemory(inst.Imm)
	default:
		// OUT, INP, RET, DIS, SAV, MARK, NOP, the borrow subtracts,
		// and the EF-line branches only consume cycles here.
	}

	cpu.Cycles += 1
	cpu.Instructions += 1

	return
}
