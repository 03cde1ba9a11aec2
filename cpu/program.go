package cpu

import (
	"fmt"
)

// Listing is a single assembled instruction with its source line.
type Listing struct {
	LineNo int    // Source line number.
	Addr   uint16 // Address of the first byte.
	Bytes  []byte // Assembled machine code.
	Source string // Source text, comments and labels stripped.
}

// String returns the listing line as "ADDR: BYTES | SOURCE".
func (l Listing) String() string {
	return fmt.Sprintf("%04X: %-8s | %s", l.Addr, fmt.Sprintf("% X", l.Bytes), l.Source)
}

// Assembly is an assembled program image and its listing.
type Assembly struct {
	Code    []byte    // Machine code image.
	Listing []Listing // Per-instruction listing.
}

// Disassembly returns the listing, one line per instruction.
func (a *Assembly) Disassembly() (lines []string) {
	for _, l := range a.Listing {
		lines = append(lines, l.String())
	}

	return
}

// At returns the listing entry covering addr, or nil.
func (a *Assembly) At(addr uint16) *Listing {
	for n := range a.Listing {
		l := &a.Listing[n]
		if addr >= l.Addr && int(addr) < int(l.Addr)+len(l.Bytes) {
			return l
		}
	}

	return nil
}
