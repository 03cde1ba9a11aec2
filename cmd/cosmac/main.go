// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/cosmac/emulator"
)

func main() {
	var compile string
	var listing bool
	var maxCycles uint64
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble and run")
	flag.BoolVar(&listing, "l", false, "Print the assembly listing")
	flag.Uint64Var(&maxCycles, "m", emulator.DEFAULT_RUN_BUDGET, "Cycle budget for the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: no input file", os.Args[0])
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	err = emu.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if listing {
		for _, line := range emu.Assembly.Disassembly() {
			fmt.Println(line)
		}
	}

	err = emu.Run(maxCycles)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(emu.Cpu.String())
}
