// convertprg takes a C64 style PRG file
// and converts it into a 64k bin image for
// running as a test cart.
// This assumes exection will start at 0xD000
// which will then JSR to the start PC given.
// BRK/IRQ/NMI vectors will all point at 0xC000
// which simply infinite loops.
//
// Certain parts of RAM in zero page will be initialized
// with c64 values (such as the vectors used for finding
// start of basic, etc)
//
// The output file is named after the input with .bin
// appended onto the end.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/jmchacon/interp6502/loader"
	"github.com/jmchacon/interp6502/memory"
)

var (
	startPC = flag.Int("start_pc", -1, "PC value to start execution. Defaults to the PRG load address.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s --start_pc=XXXX <filename>", os.Args[0])
	}
	if *startPC < -1 || *startPC > 65535 {
		log.Fatal("--start_pc out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}

	out := memory.NewFlat(0x00)
	loader.C64Presets(out)
	addr, _, err := loader.LoadPRG(out, b)
	var t loader.Truncated
	switch {
	case errors.As(err, &t):
		log.Print(err)
	case err != nil:
		log.Fatalf("Can't load %s - %v", fn, err)
	}
	fmt.Printf("Addr is 0x%.4X\n", addr)

	start := addr
	if *startPC != -1 {
		start = uint16(*startPC)
	}
	loader.InstallHarness(out, start)

	outfn := fn + ".bin"
	if err := ioutil.WriteFile(outfn, out.Slice(0x0000, 0x10000), 0644); err != nil {
		log.Fatalf("Can't write %q: %v", outfn, err)
	}
}
