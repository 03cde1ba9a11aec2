package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	// MEMORY_SIZE is the size of the flat address space, in bytes.
	MEMORY_SIZE = 65536

	// PROGRAM_START_ADDRESS is where assembled programs are loaded and run.
	PROGRAM_START_ADDRESS = uint16(0x0000)
)

var _cpu_defines = map[string]string{
	"MEM_LAST":   fmt.Sprintf("0x%x", MEMORY_SIZE-1),
	"PROG_START": fmt.Sprintf("0x%x", PROGRAM_START_ADDRESS),
}

// Cpu is the simulation context for a CDP1802 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg [16]uint16 // Scratchpad register bank.
	D   byte       // Accumulator.
	DF  bool       // Carry/borrow flag.
	P   byte       // Program counter register selector (low nibble).
	X   byte       // Index register selector (low nibble).
	IE  bool       // Interrupt enable.
	Q   bool       // Output flip-flop.

	Memory [MEMORY_SIZE]byte // Flat address space.

	Halted bool // Set once an IDL has been executed.

	Cycles       uint64 // Cycle counter.
	Instructions uint64 // Instruction counter.
}

// NewCpu creates a new CPU in its power-on state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, accumulator, flags, and memory.
// - Zeros statistics counters.
// - Enables interrupts and clears the halt latch.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Reg[:])
	clear(cpu.Memory[:])
	cpu.D = 0
	cpu.DF = false
	cpu.P = 0
	cpu.X = 0
	cpu.IE = true
	cpu.Q = false
	cpu.Halted = false
	cpu.Cycles = 0
	cpu.Instructions = 0
}

// Pc returns the current program counter: the register selected by P.
func (cpu *Cpu) Pc() uint16 {
	return cpu.Reg[cpu.P&0xf]
}

// SetPc sets the register selected by P.
func (cpu *Cpu) SetPc(addr uint16) {
	cpu.Reg[cpu.P&0xf] = addr
}

// Rx returns the register selected by X.
func (cpu *Cpu) Rx() uint16 {
	return cpu.Reg[cpu.X&0xf]
}

// SetRx sets the register selected by X.
func (cpu *Cpu) SetRx(addr uint16) {
	cpu.Reg[cpu.X&0xf] = addr
}

// Register returns the value of scratchpad register n.
func (cpu *Cpu) Register(n byte) (value uint16, err error) {
	if n > 15 {
		err = ErrRegisterRange(n)
		return
	}

	value = cpu.Reg[n]
	return
}

// SetRegister sets scratchpad register n.
func (cpu *Cpu) SetRegister(n byte, value uint16) (err error) {
	if n > 15 {
		return ErrRegisterRange(n)
	}

	cpu.Reg[n] = value
	return
}

// SetP sets the program counter register selector.
func (cpu *Cpu) SetP(n byte) (err error) {
	if n > 15 {
		return ErrRegisterRange(n)
	}

	cpu.P = n
	return
}

// SetX sets the index register selector.
func (cpu *Cpu) SetX(n byte) (err error) {
	if n > 15 {
		return ErrRegisterRange(n)
	}

	cpu.X = n
	return
}

// ReadByte reads one byte of memory.
func (cpu *Cpu) ReadByte(addr uint16) byte {
	return cpu.Memory[addr]
}

// WriteByte writes one byte of memory.
func (cpu *Cpu) WriteByte(addr uint16, value byte) {
	cpu.Memory[addr] = value
}

// LoadProgram copies a program image into memory at start.
// If the image would extend past the end of memory, the memory is
// left unmodified.
func (cpu *Cpu) LoadProgram(start uint16, program []byte) (err error) {
	if int(start)+len(program) > MEMORY_SIZE {
		return ErrAddressRange(int(start) + len(program) - 1)
	}

	copy(cpu.Memory[start:], program)
	return
}

// Halt sets the halt latch, as if an IDL had been executed.
func (cpu *Cpu) Halt() {
	cpu.Halted = true
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("    d: %02X  df: %v\n", cpu.D, boolBit(cpu.DF))
	text += fmt.Sprintf("    p: %X   x: %X\n", cpu.P, cpu.X)
	text += fmt.Sprintf("   ie: %v   q: %v\n", boolBit(cpu.IE), boolBit(cpu.Q))
	for n := 0; n < len(cpu.Reg); n += 4 {
		text += fmt.Sprintf("   r%x: %04X  r%x: %04X  r%x: %04X  r%x: %04X\n",
			n, cpu.Reg[n], n+1, cpu.Reg[n+1], n+2, cpu.Reg[n+2], n+3, cpu.Reg[n+3])
	}
	text += fmt.Sprintf("cycle: %v  inst: %v  halted: %v\n",
		cpu.Cycles, cpu.Instructions, cpu.Halted)

	return
}

func boolBit(b bool) (bit int) {
	if b {
		bit = 1
	}

	return
}

// Step fetches, decodes, and executes a single instruction.
func (cpu *Cpu) Step() (err error) {
	if cpu.Halted {
		return ErrHalted
	}

	pc := cpu.Pc()

	var data [3]byte
	for i := range data {
		data[i] = cpu.ReadByte(pc + uint16(i))
	}

	inst, ok := Decode(data[:])
	if !ok {
		return ErrBadOpcode(pc)
	}

	if cpu.Verbose {
		log.Printf("%04x: %v", pc, inst)
	}

	cpu.SetPc(pc + uint16(inst.Length()))

	return cpu.Execute(inst)
}

// Run executes instructions until the CPU halts, or maxCycles cycles
// have elapsed since the call.
func (cpu *Cpu) Run(maxCycles uint64) (err error) {
	start := cpu.Cycles

	for !cpu.Halted && cpu.Cycles-start < maxCycles {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}
