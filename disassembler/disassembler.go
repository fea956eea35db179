// disassembler takes a filename and load's it and then
// disassembles it to stdout starting at the first instruction.
// If the filename ends in .prg (case insensitive) it will assume
// this is a C64 program file and use the first 2 bytes as the load
// address (and starting PC). Otherwise the image is loaded at --offset.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmchacon/interp6502/disassemble"
	"github.com/jmchacon/interp6502/loader"
	"github.com/jmchacon/interp6502/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out. Ignored for PRG files.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}
	if *offset < 0 || *offset > 0xFFFF {
		log.Fatal("--offset out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]

	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}

	f := memory.NewFlat(0x00)
	pc := uint16(*startPC)
	var n int
	if strings.ToLower(filepath.Ext(fn)) == ".prg" {
		fmt.Println("C64 program file")
		// We're supplied with the load offset instead of using the flags.
		pc, n, err = loader.LoadPRG(f, b)
	} else {
		n, err = loader.LoadBin(f, b, uint16(*offset))
	}
	var t loader.Truncated
	switch {
	case errors.As(err, &t):
		log.Print(err)
	case err != nil:
		log.Fatalf("Can't load %s - %v", fn, err)
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", n, pc)

	cnt := 0
	// Can't base it on PC since it may rollover so just disassemble until we run out of buffer.
	for cnt < n {
		dis, off := disassemble.Step(pc, f)
		pc += uint16(off)
		cnt += off
		fmt.Printf("%s\n", dis)
	}
}
