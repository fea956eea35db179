// Package functionality does basic end-end verification
// of the 6502 variants with a simple memory map
package functionality

import (
	"encoding/hex"
	"errors"
	"io/ioutil"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmchacon/interp6502/cpu"
	"github.com/jmchacon/interp6502/disassemble"
	"github.com/jmchacon/interp6502/loader"
	"github.com/jmchacon/interp6502/memory"
	"github.com/jmchacon/interp6502/timer"
)

const (
	RESET = uint16(0x1FFE)
	IRQ   = uint16(0xD001)

	// Programs are all assembled here.
	START = uint16(0x0400)
	// Bound on steps for any of the small programs below.
	kMAX_STEPS = 100000
)

// assemble parses the listing and loads it at START.
func assemble(t *testing.T, r memory.Bank, listing ...string) {
	t.Helper()
	b, err := loader.ParseListing(strings.NewReader(strings.Join(listing, "\n")))
	if err != nil {
		t.Fatalf("Can't assemble - %v", err)
	}
	if _, err := loader.LoadBin(r, b, START); err != nil {
		t.Fatalf("Can't load - %v", err)
	}
}

// runHarness steps c until the program returns into the harness.
// tick is called after each step with the cycles it took.
func runHarness(t *testing.T, c *cpu.Processor, tick func(int)) {
	t.Helper()
	for i := 0; i < kMAX_STEPS; i++ {
		if c.PC == loader.HARNESS_DONE {
			return
		}
		if c.PC == loader.HARNESS_TRAP {
			t.Fatalf("Landed in trap: %s", c.Snapshot())
		}
		cycles, err := c.Step()
		if err != nil {
			t.Fatalf("CPU error - %v\n%s", err, c.Snapshot())
		}
		if tick != nil {
			tick(cycles)
		}
	}
	t.Fatalf("Program never finished: %s", c.Snapshot())
}

func TestNOP(t *testing.T) {
	tests := []struct {
		name       string
		haltVector uint16
	}{
		{
			name:       "Classic NOP - 0x02 halt",
			haltVector: 0x0202,
		},
		{
			name:       "Classic NOP - 0x12 halt",
			haltVector: 0x1212,
		},
		{
			name:       "Classic NOP - 0x22 halt",
			haltVector: 0x2222,
		},
		{
			name:       "Classic NOP - 0x32 halt",
			haltVector: 0x3232,
		},
		{
			name:       "Classic NOP - 0x42 halt",
			haltVector: 0x4242,
		},
		{
			name:       "Classic NOP - 0x52 halt",
			haltVector: 0x5252,
		},
		{
			name:       "Classic NOP - 0x62 halt",
			haltVector: 0x6262,
		},
		{
			name:       "Classic NOP - 0x72 halt",
			haltVector: 0x7272,
		},
		{
			name:       "Classic NOP - 0x92 halt",
			haltVector: 0x9292,
		},
		{
			name:       "Classic NOP - 0xB2 halt",
			haltVector: 0xB2B2,
		},
		{
			name:       "Classic NOP - 0xD2 halt",
			haltVector: 0xD2D2,
		},
		{
			name:       "Classic NOP - 0xF2 halt",
			haltVector: 0xF2F2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Fill with NOPs and then point NMI at opcodes which won't run.
			r := memory.NewFlat(0xEA)
			c, err := cpu.Init(cpu.CPU_NMOS, r)
			if err != nil {
				t.Fatalf("Can't initialize CPU_NMOS: %v", err)
			}
			loader.SetVectors(r, test.haltVector, RESET, IRQ)
			c.Reset()
			canonical := r.Slice(0x0000, 0x10000)
			saved := c.Snapshot()

			// We should end up executing 2 cycles for each address between the starting PC
			// (RESET) and NMI_VECTOR (first non NOP) plus the placeholder.
			want := int(cpu.NMI_VECTOR-RESET)*2 + 2
			got := 0
			for {
				pc := c.PC
				cycles, err := c.Step()
				got += cycles
				if err != nil {
					var e cpu.UnimplementedOpcode
					if !errors.As(err, &e) {
						t.Fatalf("Didn't stop due to placeholder: %T - %v", err, err)
					}
					if got, want := e.Opcode, uint8(test.haltVector&0xFF); got != want {
						t.Errorf("Stopped on unexpected opcode. Got 0x%.2X and want 0x%.2X", got, want)
					}
					if got, want := e.PC, cpu.NMI_VECTOR; got != want {
						t.Errorf("Stopped at wrong PC. Got 0x%.4X and want 0x%.4X", got, want)
					}
					break
				}
				// NOPs should be single PC increments only
				if c.PC != pc+1 {
					t.Fatalf("PC didn't increment by one. Got 0x%.4X and started with 0x%.4X", c.PC, pc)
				}
				// Registers shouldn't be changing
				now := c.Snapshot()
				if saved.A != now.A || saved.X != now.X || saved.Y != now.Y || saved.S != now.S || saved.P != now.P {
					t.Fatalf("Registers changed at PC: 0x%.4X\nGot  %s\nwant %s", pc, now, saved)
				}
				// We've wrapped around so abort
				if got > (0xFFFF * 2) {
					t.Fatalf("Never reached NMI vector: %s", c.Snapshot())
				}
			}
			if got != want {
				t.Errorf("Invalid cycle count. Stopped PC: 0x%.4X\nGot  %d\nwant %d\n%.8X %s", c.PC-1, got, want, c.PC-1, hex.Dump(r.Slice(c.PC-1, 8))[9:])
			}
			if got := r.Slice(0x0000, 0x10000); string(got) != string(canonical) {
				t.Errorf("Memory changed unexpectedly")
			}
			// The CPU keeps going after a placeholder. The high byte of the vector is the same opcode.
			if _, err := c.Step(); err == nil {
				t.Errorf("Didn't get an error for second placeholder at 0x%.4X", c.PC-1)
			}
			if got, want := c.PC, cpu.RESET_VECTOR; got != want {
				t.Errorf("PC didn't advance past placeholder. Got 0x%.4X and want 0x%.4X", got, want)
			}
		})
	}
}

func BenchmarkNOP(b *testing.B) {
	got := 0
	elapsed := int64(0)
	for i := 0; i < b.N; i++ {
		r := memory.NewFlat(0xEA)
		c, err := cpu.Init(cpu.CPU_NMOS, r)
		if err != nil {
			b.Fatalf("Can't initialize CPU_NMOS: %v", err)
		}
		loader.SetVectors(r, 0x0202, RESET, IRQ)
		c.Reset()
		n := time.Now()
		for {
			cycles, err := c.Step()
			got += cycles
			if err != nil {
				break
			}
		}
		elapsed += time.Now().Sub(n).Nanoseconds()
	}
	b.Logf("%d cycles in %dns %fns/cycle", got, elapsed, float64(elapsed)/float64(got))
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		a, b uint8
	}{
		{0, 0},
		{1, 1},
		{7, 6},
		{0x10, 0x10},
		{200, 3},
		{0xFF, 0xFF},
	}
	for _, test := range tests {
		r := memory.NewFlat(0x00)
		c, err := cpu.Init(cpu.CPU_NMOS, r)
		if err != nil {
			t.Fatalf("Can't initialize cpu - %v", err)
		}
		// 8x8 shift and add. $10 * $11 -> $13:$12
		assemble(t, r,
			"0400 A9 00\tLDA #$00",
			"0402 A2 08\tLDX #$08",
			"0404 46 10\tLSR $10",
			"0406 90 03\tBCC $040B",
			"0408 18\tCLC",
			"0409 65 11\tADC $11",
			"040B 6A\tROR A",
			"040C 66 12\tROR $12",
			"040E CA\tDEX",
			"040F D0 F3\tBNE $0404",
			"0411 85 13\tSTA $13",
			"0413 60\tRTS",
		)
		r.Write(0x10, test.a)
		r.Write(0x11, test.b)
		loader.InstallHarness(r, START)
		c.Reset()
		runHarness(t, c, nil)
		if got, want := memory.ReadWord(r, 0x12), uint16(test.a)*uint16(test.b); got != want {
			t.Errorf("%d*%d: Got %d and want %d\n%s", test.a, test.b, got, want, spew.Sdump(r.Slice(0x10, 4)))
		}
	}
}

func TestBCDCounter(t *testing.T) {
	tests := []struct {
		name string
		cpu  cpu.CPUType
		want uint16
	}{
		{
			name: "NMOS",
			cpu:  cpu.CPU_NMOS,
			want: 0x0150,
		},
		{
			name: "Ricoh has no decimal mode",
			cpu:  cpu.CPU_NMOS_RICOH,
			want: 150,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := memory.NewFlat(0x00)
			c, err := cpu.Init(test.cpu, r)
			if err != nil {
				t.Fatalf("Can't initialize cpu - %v", err)
			}
			// Count 150 times into the 16 bit counter at $20.
			assemble(t, r,
				"0400 F8\tSED",
				"0401 A2 96\tLDX #$96",
				"0403 18\tCLC",
				"0404 A5 20\tLDA $20",
				"0406 69 01\tADC #$01",
				"0408 85 20\tSTA $20",
				"040A A5 21\tLDA $21",
				"040C 69 00\tADC #$00",
				"040E 85 21\tSTA $21",
				"0410 CA\tDEX",
				"0411 D0 F0\tBNE $0403",
				"0413 D8\tCLD",
				"0414 60\tRTS",
			)
			loader.InstallHarness(r, START)
			c.Reset()
			runHarness(t, c, nil)
			if got, want := memory.ReadWord(r, 0x20), test.want; got != want {
				t.Errorf("Bad count. Got 0x%.4X and want 0x%.4X", got, want)
			}
			if c.P&uint8(cpu.P_DECIMAL) != 0 {
				t.Errorf("Decimal still set: %s", c.Snapshot())
			}
		})
	}
}

func TestTimerIRQ(t *testing.T) {
	r := memory.NewFlat(0x00)
	m := memory.NewMapper(r)
	tm := timer.New()
	if err := m.Map(0x0280, 0x0280+timer.Size-1, tm); err != nil {
		t.Fatalf("Can't map timer - %v", err)
	}
	c, err := cpu.Init(cpu.CPU_NMOS, m)
	if err != nil {
		t.Fatalf("Can't initialize cpu - %v", err)
	}
	c.InstallIRQ(tm)

	// Start the timer with interrupts and spin until the handler runs.
	assemble(t, m,
		"0400 A9 10\tLDA #$10",
		"0402 8D 9C 02\tSTA $029C",
		"0405 58\tCLI",
		"0406 A5 30\tLDA $30",
		"0408 F0 FC\tBEQ $0406",
		"040A 60\tRTS",
	)
	// Handler reads the timer (which acks it) and counts.
	handler := []byte{
		0xAD, 0x84, 0x02, // LDA $0284
		0xE6, 0x30, // INC $30
		0x40, // RTI
	}
	if _, err := loader.LoadBin(m, handler, 0x0500); err != nil {
		t.Fatalf("Can't load handler - %v", err)
	}
	loader.InstallHarness(m, START)
	loader.SetVectors(m, loader.HARNESS_TRAP, loader.HARNESS_START, 0x0500)
	c.Reset()

	total := 0
	runHarness(t, c, func(cycles int) {
		total += cycles
		tm.Tick(cycles)
	})
	if got, want := r.Read(0x30), uint8(0x01); got != want {
		t.Errorf("Handler ran wrong number of times. Got %d and want %d", got, want)
	}
	if tm.Raised() {
		t.Errorf("Timer still raised: %s", tm)
	}
	// 0x10 ticks at 1x then the interrupt has to be taken.
	if total < 0x10 {
		t.Errorf("Finished too soon. Got %d cycles", total)
	}
	if c.P&uint8(cpu.P_INTERRUPT) != 0 {
		t.Errorf("I flag not restored by RTI: %s", c.Snapshot())
	}
}

// TestROM runs Klaus Dormann's 6502 functional test if the image is available.
// See https://github.com/Klaus2m5/6502_65C02_functional_tests
func TestROM(t *testing.T) {
	const success = uint16(0x3469)
	rom, err := ioutil.ReadFile("6502_functional_test.bin")
	if os.IsNotExist(err) {
		t.Skip("6502_functional_test.bin not present")
	}
	if err != nil {
		t.Fatalf("Can't read ROM: %v", err)
	}
	r := memory.NewFlat(0x00)
	c, err := cpu.Init(cpu.CPU_NMOS, r)
	if err != nil {
		t.Fatalf("Can't initialize cpu - %v", err)
	}
	if _, err := loader.LoadBin(r, rom, 0x0000); err != nil {
		t.Fatalf("Can't load ROM: %v", err)
	}
	c.PC = 0x400

	const iterations = 20
	var buffer [iterations]cpu.Registers // last N states
	bufferLoc := 0
	defer func() {
		if !t.Failed() {
			return
		}
		t.Logf("Zero page dump:\n%s", hex.Dump(r.Slice(0x0000, 0x100)))
		t.Logf("Last %d instructions:", iterations)
		for i := 0; i < iterations; i++ {
			dis, _ := disassemble.Step(buffer[bufferLoc].PC, r)
			t.Logf("%s - %s", dis, buffer[bufferLoc])
			bufferLoc = (bufferLoc + 1) % iterations
		}
	}()

	for {
		pc := c.PC
		buffer[bufferLoc] = c.Snapshot()
		bufferLoc = (bufferLoc + 1) % iterations
		if _, err := c.Step(); err != nil {
			t.Fatalf("%d cycles - CPU error at PC: 0x%.4X - %v", c.Cycles, pc, err)
		}
		if pc == c.PC {
			if pc != success {
				t.Fatalf("%d cycles - CPU looping at PC: 0x%.4X", c.Cycles, pc)
			}
			break
		}
	}
}
