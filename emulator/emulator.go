// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/cosmac/cpu"
	"github.com/ezrec/cosmac/internal"
)

// DEFAULT_RUN_BUDGET is the default cycle budget for a run.
const DEFAULT_RUN_BUDGET = uint64(1_000_000)

var _emulator_defines = map[string]string{
	"RUN_BUDGET": fmt.Sprintf("%#v", DEFAULT_RUN_BUDGET),
}

// Emulator state. CPU + the program it is running.
type Emulator struct {
	Verbose  bool          // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU simulation.
	Assembly *cpu.Assembly // Reference to the currently loaded program.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:      cpu.NewCpu(),
		Assembly: &cpu.Assembly{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Assemble assembles a source stream, resets the CPU, and loads the
// program at the start of memory.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err := asm.Assemble(input)
	if err != nil {
		return
	}

	emu.Cpu.Reset()
	err = emu.Cpu.LoadProgram(cpu.PROGRAM_START_ADDRESS, prog.Code)
	if err != nil {
		return
	}

	emu.Assembly = prog
	return
}

// LineNo returns the source line number for the instruction at the
// program counter, or 0.
func (emu *Emulator) LineNo() int {
	l := emu.Assembly.At(emu.Cpu.Pc())
	if l == nil {
		return 0
	}

	return l.LineNo
}

// Step executes a single instruction.
func (emu *Emulator) Step() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc()
	err = emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Addr: pc, Err: err}
	}

	return
}

// Run executes instructions until the CPU halts, or maxCycles cycles
// have elapsed.
func (emu *Emulator) Run(maxCycles uint64) (err error) {
	start := emu.Cpu.Cycles

	for !emu.Cpu.Halted && emu.Cpu.Cycles-start < maxCycles {
		err = emu.Step()
		if err != nil {
			return
		}
	}

	return
}
