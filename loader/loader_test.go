package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/jmchacon/interp6502/cpu"
	"github.com/jmchacon/interp6502/memory"
)

func TestLoadBin(t *testing.T) {
	r := memory.NewFlat(0x00)
	n, err := LoadBin(r, []byte{0x01, 0x02, 0x03}, 0x0200)
	if err != nil {
		t.Fatalf("LoadBin failed: %v", err)
	}
	if got, want := n, 3; got != want {
		t.Errorf("Wrong count. Got %d and want %d", got, want)
	}
	if diff := deep.Equal(r.Slice(0x01FF, 5), []uint8{0x00, 0x01, 0x02, 0x03, 0x00}); diff != nil {
		t.Errorf("Bad load: %v", diff)
	}

	// Runs past 0xFFFF
	n, err = LoadBin(r, []byte{0xAA, 0xBB, 0xCC}, 0xFFFE)
	var e Truncated
	if !errors.As(err, &e) {
		t.Fatalf("Didn't get Truncated. Got %v", err)
	}
	if diff := deep.Equal(e, Truncated{Offset: 0xFFFE, Length: 3, Written: 2}); diff != nil {
		t.Errorf("Bad error: %v", diff)
	}
	if got, want := n, 2; got != want {
		t.Errorf("Wrong count. Got %d and want %d", got, want)
	}
	if diff := deep.Equal(r.Slice(0xFFFE, 3), []uint8{0xAA, 0xBB, 0x00}); diff != nil {
		t.Errorf("Truncated load wrapped: %v", diff)
	}
}

func TestLoadPRG(t *testing.T) {
	r := memory.NewFlat(0x00)
	addr, n, err := LoadPRG(r, []byte{0x01, 0x08, 0xEA, 0x60})
	if err != nil {
		t.Fatalf("LoadPRG failed: %v", err)
	}
	if got, want := addr, uint16(0x0801); got != want {
		t.Errorf("Wrong address. Got 0x%.4X and want 0x%.4X", got, want)
	}
	if got, want := n, 2; got != want {
		t.Errorf("Wrong count. Got %d and want %d", got, want)
	}
	if diff := deep.Equal(r.Slice(0x0801, 2), []uint8{0xEA, 0x60}); diff != nil {
		t.Errorf("Bad load: %v", diff)
	}
	if _, _, err := LoadPRG(r, []byte{0x01}); err == nil {
		t.Errorf("Didn't get error for short PRG")
	}
}

func TestParseListing(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{
			name: "basic",
			in: `; comment line
            *= $0200
0200 A9 01\tLDA #$01
0202 8D 00 30\tSTA $3000
0205 EA (*) NOP
0206 4C 00 02\tJMP $0200
`,
			want: []byte{0xA9, 0x01, 0x8D, 0x00, 0x30, 0xEA, 0x4C, 0x00, 0x02},
		},
		{
			name:    "bad hex",
			in:      "0200 ZZ\n",
			wantErr: true,
		},
		{
			name:    "too many bytes",
			in:      "0200 A9 01 02 03\n",
			wantErr: true,
		},
		{
			name:    "address only",
			in:      "0200\n",
			wantErr: true,
		},
		{
			name: "lower case address isn't a listing line",
			in:   "beef A9 01\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Allow writing a literal tab in the test table.
			in := strings.ReplaceAll(test.in, `\t`, "\t")
			got, err := ParseListing(strings.NewReader(in))
			if test.wantErr {
				if err == nil {
					t.Fatalf("Didn't get an error. Got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseListing failed: %v", err)
			}
			if diff := deep.Equal(got, test.want); diff != nil {
				t.Errorf("Bad parse: %v", diff)
			}
		})
	}
}

func TestHarness(t *testing.T) {
	r := memory.NewFlat(0x00)
	c, err := cpu.Init(cpu.CPU_NMOS, r)
	if err != nil {
		t.Fatalf("Can't initialize cpu - %v", err)
	}
	// LDA #$42, STA $10, RTS
	if _, err := LoadBin(r, []byte{0xA9, 0x42, 0x85, 0x10, 0x60}, 0x0400); err != nil {
		t.Fatalf("LoadBin failed: %v", err)
	}
	InstallHarness(r, 0x0400)
	if got, want := memory.ReadWord(r, cpu.RESET_VECTOR), HARNESS_START; got != want {
		t.Errorf("Bad reset vector. Got 0x%.4X and want 0x%.4X", got, want)
	}
	if got, want := memory.ReadWord(r, cpu.IRQ_VECTOR), HARNESS_TRAP; got != want {
		t.Errorf("Bad IRQ vector. Got 0x%.4X and want 0x%.4X", got, want)
	}
	c.Reset()

	for i := 0; i < 10; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	if got, want := c.PC, HARNESS_DONE; got != want {
		t.Errorf("Didn't park in harness. Got PC 0x%.4X and want 0x%.4X", got, want)
	}
	if got, want := r.Read(0x10), uint8(0x42); got != want {
		t.Errorf("Program didn't run. Got 0x%.2X and want 0x%.2X", got, want)
	}

	// BRK lands in the trap.
	r.Write(0x0400, 0x00)
	c.PC = 0x0400
	for i := 0; i < 3; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	if got, want := c.PC, HARNESS_TRAP; got != want {
		t.Errorf("BRK didn't land in trap. Got PC 0x%.4X and want 0x%.4X", got, want)
	}
}

func TestC64Presets(t *testing.T) {
	r := memory.NewFlat(0x00)
	C64Presets(r)
	// Start of BASIC
	if got, want := memory.ReadWord(r, 0x002B), uint16(0x0801); got != want {
		t.Errorf("Bad BASIC start. Got 0x%.4X and want 0x%.4X", got, want)
	}
	// IRQ indirection into the kernal.
	if got, want := memory.ReadWord(r, 0x0314), uint16(0xEA31); got != want {
		t.Errorf("Bad IRQ vector. Got 0x%.4X and want 0x%.4X", got, want)
	}
}
