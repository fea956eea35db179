// Package loader places program images into a memory.Bank so they can be
// disassembled or run. It understands raw binaries, C64 style PRG files
// and hand assembled listings of the form:
//
//	XXXX OP A1 A2
//
// Where XXXX is the address field and OP is the opcode.
// A1,A2 are then optional params as needed.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmchacon/interp6502/cpu"
	"github.com/jmchacon/interp6502/memory"
)

const (
	// HARNESS_TRAP is where NMI/IRQ land when using InstallHarness. It loops forever.
	HARNESS_TRAP = uint16(0xC000)
	// HARNESS_START is where RESET lands when using InstallHarness. It does a JSR to the program.
	HARNESS_START = uint16(0xD000)
	// HARNESS_DONE is the JMP to itself the program returns to when its RTS runs.
	HARNESS_DONE = uint16(0xD003)
	// HARNESS_CHROUT is the C64 kernal character output routine. It's stubbed with an RTS.
	HARNESS_CHROUT = uint16(0xFFD2)

	kMAX_ADDR = 0x10000
)

// Truncated is returned when an image runs past the top of memory.
// Everything up to 0xFFFF was still written.
type Truncated struct {
	Offset  uint16
	Length  int
	Written int
}

// Error implements the interface for error types.
func (e Truncated) Error() string {
	return fmt.Sprintf("length %d at offset 0x%.4X too long, truncated to %d bytes", e.Length, e.Offset, e.Written)
}

// LoadBin copies b into r starting at offset and returns the number of bytes written.
// Images which run past 0xFFFF are truncated and a Truncated error is returned
// along with the count actually written.
func LoadBin(r memory.Bank, b []byte, offset uint16) (int, error) {
	max := kMAX_ADDR - int(offset)
	var err error
	if l := len(b); l > max {
		err = Truncated{Offset: offset, Length: l, Written: max}
		b = b[:max]
	}
	for i, v := range b {
		r.Write(offset+uint16(i), v)
	}
	return len(b), err
}

// LoadPRG loads a C64 style PRG file where the first 2 bytes are the
// little endian load address. Returns the load address and the number of
// bytes written (not counting the header).
func LoadPRG(r memory.Bank, b []byte) (uint16, int, error) {
	if len(b) < 2 {
		return 0, 0, errors.New("PRG image too short for a load address")
	}
	addr := (uint16(b[1]) << 8) | uint16(b[0])
	n, err := LoadBin(r, b[2:], addr)
	return addr, n, err
}

// ParseListing converts a hand assembled listing into the bytes it describes.
// Only lines starting with a 4 digit hex address are used. The address column
// is dropped along with anything after a tab or a (*) marker. Each remaining
// line must be 1-3 hex bytes. Addresses aren't checked so the listing must be
// contiguous.
func ParseListing(in io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(in)
	var output []byte
	l := 0
	for scanner.Scan() {
		t := scanner.Text()
		l++
		if !isAddress(t) {
			continue
		}
		if i := strings.Index(t, "\t"); i != -1 {
			t = t[:i]
		}
		if i := strings.Index(t, "(*)"); i != -1 {
			t = t[:i]
		}
		// Skip address and its separator.
		if len(t) < 6 {
			return nil, fmt.Errorf("line %d has an address but no data - %q", l, t)
		}
		toks := strings.Fields(t[5:])
		// Should be 1-3 tokens
		if len(toks) < 1 || len(toks) > 3 {
			return nil, fmt.Errorf("invalid line %d - %q", l, t)
		}
		for _, v := range toks {
			b, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("can't process input line %d %q - %v", l, t, err)
			}
			output = append(output, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading listing: %v", err)
	}
	return output, nil
}

// isAddress returns true if the line starts with 4 upper case hex digits.
func isAddress(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, c := range s[:4] {
		if !(c >= '0' && c <= '9') && !(c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// SetVectors writes the NMI, RESET and IRQ/BRK vectors.
func SetVectors(r memory.Bank, nmi, reset, irq uint16) {
	memory.WriteWord(r, cpu.NMI_VECTOR, nmi)
	memory.WriteWord(r, cpu.RESET_VECTOR, reset)
	memory.WriteWord(r, cpu.IRQ_VECTOR, irq)
}

// InstallHarness sets up a small test harness around a loaded program.
// RESET points at HARNESS_START which does a JSR to start and then loops
// at HARNESS_DONE once the program returns. NMI and IRQ/BRK point at HARNESS_TRAP which
// simply loops forever. A runner can detect either state by PC no longer changing.
func InstallHarness(r memory.Bank, start uint16) {
	// JMP HARNESS_TRAP
	r.Write(HARNESS_TRAP, 0x4C)
	memory.WriteWord(r, HARNESS_TRAP+1, HARNESS_TRAP)

	// JSR <start>
	r.Write(HARNESS_START, 0x20)
	memory.WriteWord(r, HARNESS_START+1, start)
	// JMP HARNESS_DONE
	r.Write(HARNESS_DONE, 0x4C)
	memory.WriteWord(r, HARNESS_DONE+1, HARNESS_DONE)

	// RTS
	r.Write(HARNESS_CHROUT, 0x60)

	SetVectors(r, HARNESS_TRAP, HARNESS_START, HARNESS_TRAP)
}

// c64Presets are locations a C64 has initialized by the kernal before a
// program runs. Based from data in http://sta.c64.org/cbm64mem.html.
var c64Presets = []struct {
	addr uint16
	val  uint8
}{
	// Zero page.
	{0x0000, 0x2F}, {0x0001, 0x37}, {0x0003, 0xAA}, {0x0004, 0xB1},
	{0x0005, 0x91}, {0x0006, 0xB3}, {0x0016, 0x19},
	{0x002B, 0x01}, {0x002C, 0x08}, // Pointer to start of BASIC area
	{0x0038, 0xA0}, // Pointer to end of BASIC area
	{0x0053, 0x03}, {0x0054, 0x4C}, {0x0091, 0xFF}, {0x009A, 0x03},
	{0x00B2, 0x3C}, {0x00B3, 0x03}, {0x00C8, 0x27}, {0x00D5, 0x27},

	{0x0282, 0x08}, {0x0284, 0xA0}, {0x0288, 0x04},
	// Kernal/BASIC indirection vectors.
	{0x0300, 0x8B}, {0x0301, 0xE3}, {0x0302, 0x83}, {0x0303, 0xA4},
	{0x0304, 0x7C}, {0x0305, 0xA5}, {0x0306, 0x1A}, {0x0307, 0xA7},
	{0x0308, 0xE4}, {0x0309, 0xA7}, {0x030A, 0x86}, {0x030B, 0xAE},
	{0x0310, 0x4C}, {0x0314, 0x31}, {0x0315, 0xEA}, {0x0316, 0x66},
	{0x0317, 0xFE}, {0x0318, 0x47}, {0x0319, 0xFE}, {0x031A, 0x4A},
	{0x031B, 0xF3}, {0x031C, 0x91}, {0x031D, 0xF2}, {0x031E, 0x0E},
	{0x031F, 0xF2}, {0x0320, 0x50}, {0x0321, 0xF2}, {0x0322, 0x33},
	{0x0323, 0xF3}, {0x0324, 0x57}, {0x0325, 0xF1}, {0x0326, 0xCA},
	{0x0327, 0xF1}, {0x0328, 0xED}, {0x0329, 0xF6}, {0x032A, 0x3E},
	{0x032B, 0xF1}, {0x032C, 0x2F}, {0x032D, 0xF3}, {0x032E, 0x66},
	{0x032F, 0xFE}, {0x0330, 0xA5}, {0x0331, 0xF4}, {0x0332, 0xED},
	{0x0333, 0xF5},
}

// C64Presets fills in the zero page and vector table values a C64 program
// may assume are already set up.
func C64Presets(r memory.Bank) {
	for _, p := range c64Presets {
		r.Write(p.addr, p.val)
	}
}
