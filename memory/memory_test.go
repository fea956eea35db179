package memory

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

func TestWords(t *testing.T) {
	f := NewFlat(0x00)
	WriteWord(f, 0x1234, 0xBEEF)
	if got, want := f.Read(0x1234), uint8(0xEF); got != want {
		t.Errorf("Low byte wrong. Got 0x%.2X and want 0x%.2X", got, want)
	}
	if got, want := f.Read(0x1235), uint8(0xBE); got != want {
		t.Errorf("High byte wrong. Got 0x%.2X and want 0x%.2X", got, want)
	}
	if got, want := ReadWord(f, 0x1234), uint16(0xBEEF); got != want {
		t.Errorf("ReadWord wrong. Got 0x%.4X and want 0x%.4X", got, want)
	}

	// 64k wrap
	WriteWord(f, 0xFFFF, 0x1122)
	if got, want := f.Read(0x0000), uint8(0x11); got != want {
		t.Errorf("Word didn't wrap at 64k. Got 0x%.2X and want 0x%.2X", got, want)
	}
	if got, want := ReadWord(f, 0xFFFF), uint16(0x1122); got != want {
		t.Errorf("ReadWord wrong at 64k. Got 0x%.4X and want 0x%.4X", got, want)
	}

	// Zero page pointers wrap in the zero page.
	f.Write(0x00FF, 0x34)
	f.Write(0x0000, 0x12)
	f.Write(0x0100, 0x56)
	if got, want := ReadZPWord(f, 0xFF), uint16(0x1234); got != want {
		t.Errorf("ReadZPWord didn't wrap. Got 0x%.4X and want 0x%.4X", got, want)
	}
}

func TestAddresses(t *testing.T) {
	if got, want := ZeroPage(0x80), uint16(0x0080); got != want {
		t.Errorf("ZeroPage wrong. Got 0x%.4X and want 0x%.4X", got, want)
	}
	if got, want := Stack(0xFD), uint16(0x01FD); got != want {
		t.Errorf("Stack wrong. Got 0x%.4X and want 0x%.4X", got, want)
	}
	tests := []struct {
		a, b uint16
		want bool
	}{
		{0x2000, 0x20FF, true},
		{0x20FF, 0x2100, false},
		{0xFFFF, 0x0000, false},
	}
	for _, test := range tests {
		if got := SamePage(test.a, test.b); got != test.want {
			t.Errorf("SamePage(0x%.4X, 0x%.4X) = %t, want %t", test.a, test.b, got, test.want)
		}
	}
}

func TestFlat(t *testing.T) {
	f := NewFlat(0xEA)
	if got, want := f.Read(0x8000), uint8(0xEA); got != want {
		t.Errorf("Fill wrong. Got 0x%.2X and want 0x%.2X", got, want)
	}
	f.Write(0xFFFE, 0x01)
	f.Write(0xFFFF, 0x02)
	f.Write(0x0000, 0x03)
	if diff := deep.Equal(f.Slice(0xFFFE, 4), []uint8{0x01, 0x02, 0x03, 0xEA}); diff != nil {
		t.Errorf("Slice wrong: %v", diff)
	}
	f.PowerOn()
	if got, want := f.Read(0xFFFE), uint8(0xEA); got != want {
		t.Errorf("PowerOn didn't refill. Got 0x%.2X and want 0x%.2X", got, want)
	}
}

// device is a Bank which counts accesses.
type device struct {
	name    string
	reads   int
	writes  int
	last    uint8
	powered bool
}

func (d *device) Read(addr uint16) uint8 {
	d.reads++
	return d.last
}

func (d *device) Write(addr uint16, val uint8) {
	d.writes++
	d.last = val
}

func (d *device) PowerOn() {
	d.powered = true
}

func TestMapper(t *testing.T) {
	base := NewFlat(0x00)
	m := NewMapper(base)
	big := &device{name: "big"}
	small := &device{name: "small"}
	dup := &device{name: "dup"}

	if err := m.Map(0x2000, 0x3FFF, big); err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if err := m.Map(0x2800, 0x28FF, small); err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if err := m.Map(0x3000, 0x1000, small); err == nil {
		t.Errorf("Didn't get error for a backwards range")
	}

	tests := []struct {
		addr uint16
		want Bank
	}{
		{0x1FFF, base},
		{0x2000, big},
		{0x2800, small},
		{0x28FF, small},
		{0x2900, big},
		{0x3FFF, big},
		{0x4000, base},
	}
	for _, test := range tests {
		if got := m.bank(test.addr); got != test.want {
			t.Errorf("0x%.4X went to wrong bank.\nGot:  %s\nWant: %s", test.addr, spew.Sdump(got), spew.Sdump(test.want))
		}
	}

	// Same range again and the newest wins.
	if err := m.Map(0x2800, 0x28FF, dup); err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	m.Write(0x2810, 0x55)
	if got, want := dup.writes, 1; got != want {
		t.Errorf("Newest mapping didn't win. %s", m)
	}
	if got, want := m.Read(0x2810), uint8(0x55); got != want {
		t.Errorf("Read wrong. Got 0x%.2X and want 0x%.2X", got, want)
	}
	if got, want := small.writes+small.reads, 0; got != want {
		t.Errorf("Shadowed mapping was accessed %d times", got)
	}

	if !m.Unmap(dup) {
		t.Errorf("Unmap didn't find mapping")
	}
	if m.Unmap(dup) {
		t.Errorf("Unmap found a mapping twice")
	}
	m.Write(0x2810, 0x66)
	if got, want := small.writes, 1; got != want {
		t.Errorf("Unmap didn't expose older mapping. %s", m)
	}

	// Unmapped writes go to the base.
	m.Write(0x1000, 0x77)
	if got, want := base.Read(0x1000), uint8(0x77); got != want {
		t.Errorf("Base not written. Got 0x%.2X and want 0x%.2X", got, want)
	}

	base.Write(0x0000, 0x99)
	m.PowerOn()
	if got, want := base.Read(0x0000), uint8(0x00); got != want {
		t.Errorf("Base not powered on. Got 0x%.2X and want 0x%.2X", got, want)
	}
	if !big.powered || !small.powered {
		t.Errorf("Mapped banks not powered on: %s", spew.Sdump(big, small))
	}
}
