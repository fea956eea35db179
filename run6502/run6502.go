// run6502 loads an image into a flat 64k RAM and runs it on an emulated 6502.
// Execution stops once the PC no longer changes (a JMP to itself such as the
// loader harness parks in), --max_cycles is reached or an unimplemented opcode
// is hit with --stop_on_illegal.
//
// If the filename ends in .prg (case insensitive) it's loaded as a C64 program
// file and run through the loader harness so its final RTS parks the CPU.
// Otherwise the image is loaded at --offset and run from the reset vector
// (or --start_pc if given).
//
// With --step each instruction waits for a key press. q quits.
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

	"github.com/jmchacon/interp6502/cpu"
	"github.com/jmchacon/interp6502/disassemble"
	"github.com/jmchacon/interp6502/loader"
	"github.com/jmchacon/interp6502/memory"
	"github.com/jmchacon/interp6502/timer"
	"golang.org/x/term"
)

var (
	startPC       = flag.Int("start_pc", -1, "PC value to start execution. Defaults to the reset vector (or the load address for PRG files).")
	offset        = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out. Ignored for PRG files.")
	maxCycles     = flag.Uint64("max_cycles", 0, "Stop after this many clock cycles. 0 runs until the PC stops changing.")
	trace         = flag.Bool("trace", false, "Print each instruction and the register state after it runs")
	step          = flag.Bool("step", false, "Wait for a key press before each instruction. Implies --trace")
	harness       = flag.Bool("harness", false, "Install the loader harness around --start_pc. Always used for PRG files.")
	c64           = flag.Bool("c64", false, "Preset zero page and vectors as a C64 kernal would. Always used for PRG files.")
	timerBase     = flag.Int("timer_base", -1, "If set maps an interval timer at this address which drives IRQ.")
	stopOnIllegal = flag.Bool("stop_on_illegal", false, "Stop when an unimplemented opcode is executed instead of skipping it")
	ricoh         = flag.Bool("ricoh", false, "Emulate the Ricoh variant which has no decimal mode")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [flags] <filename>", os.Args[0])
	}
	if *offset < 0 || *offset > 0xFFFF {
		log.Fatal("--offset out of range. Must be between 0-65535")
	}
	if *startPC < -1 || *startPC > 0xFFFF {
		log.Fatal("--start_pc out of range. Must be between 0-65535")
	}
	if *timerBase < -1 || *timerBase > 0xFFFF-timer.Size+1 {
		log.Fatalf("--timer_base out of range. Must be between 0-%d", 0xFFFF-timer.Size+1)
	}
	if *step {
		*trace = true
	}
	if err := run(flag.Args()[0]); err != nil {
		log.Fatal(err)
	}
}

func run(fn string) error {
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("can't open %s - %v", fn, err)
	}

	ram := memory.NewFlat(0x00)
	m := memory.NewMapper(ram)
	var t *timer.Timer
	if *timerBase != -1 {
		t = timer.New()
		base := uint16(*timerBase)
		if err := m.Map(base, base+timer.Size-1, t); err != nil {
			return fmt.Errorf("can't map timer - %v", err)
		}
	}

	typ := cpu.CPU_NMOS
	if *ricoh {
		typ = cpu.CPU_NMOS_RICOH
	}
	// Init powers on all of memory so load after this.
	c, err := cpu.Init(typ, m)
	if err != nil {
		return fmt.Errorf("can't initialize cpu - %v", err)
	}
	if t != nil {
		c.InstallIRQ(t)
	}

	if err := load(ram, fn, b); err != nil {
		return err
	}
	c.Reset()
	if !*harness && *startPC != -1 {
		c.PC = uint16(*startPC)
	}

	if *step && term.IsTerminal(int(os.Stdin.Fd())) {
		old, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("can't set terminal to raw mode - %v", err)
		}
		defer term.Restore(int(os.Stdin.Fd()), old)
	}

	key := make([]byte, 1)
	for {
		if *maxCycles != 0 && c.Cycles >= *maxCycles {
			fmt.Printf("Reached %d cycles\r\n", c.Cycles)
			break
		}
		pc := c.PC
		var dis string
		if *trace {
			dis, _ = disassemble.Step(pc, m)
		}
		if *step {
			if _, err := os.Stdin.Read(key); err != nil {
				return fmt.Errorf("reading key - %v", err)
			}
			if key[0] == 'q' {
				break
			}
		}
		cycles, err := c.Step()
		if t != nil {
			t.Tick(cycles)
		}
		if *trace {
			fmt.Printf("%-32s %s\r\n", dis, c.Snapshot())
		}
		var u cpu.UnimplementedOpcode
		if errors.As(err, &u) {
			if *stopOnIllegal {
				return err
			}
			fmt.Printf("%v\r\n", err)
		}
		if c.PC == pc {
			fmt.Printf("PC stopped changing at 0x%.4X\r\n", pc)
			break
		}
	}
	fmt.Printf("%s\r\n", c.Snapshot())
	if t != nil {
		fmt.Printf("%s\r\n", t)
	}
	return nil
}

// load places the image in RAM along with any harness or presets requested.
func load(ram *memory.Flat, fn string, b []byte) error {
	var addr uint16
	var err error
	prg := strings.ToLower(filepath.Ext(fn)) == ".prg"
	if prg || *c64 {
		loader.C64Presets(ram)
	}
	if prg {
		addr, _, err = loader.LoadPRG(ram, b)
	} else {
		addr = uint16(*offset)
		_, err = loader.LoadBin(ram, b, addr)
	}
	var tr loader.Truncated
	switch {
	case errors.As(err, &tr):
		log.Print(err)
	case err != nil:
		return fmt.Errorf("can't load %s - %v", fn, err)
	}
	if prg || *harness {
		start := addr
		if *startPC != -1 {
			start = uint16(*startPC)
		}
		loader.InstallHarness(ram, start)
		*harness = true
	}
	return nil
}
