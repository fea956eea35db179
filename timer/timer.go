// Package timer implements the interval timer section of a 6532 RIOT
// as described in http://www.ionpool.net/arcade/gottlieb/technical/datasheets/R6532_datasheet.pdf
// as a memory mapped peripheral which can drive the CPU IRQ line.
//
// Only the timer registers are decoded. Everything else reads as zero and
// ignores writes. Addresses are masked to 5 bits so the chip can be mapped
// anywhere (and aliases through any larger range it's mapped into).
package timer

import (
	"fmt"
	"math/rand"

	"github.com/jmchacon/interp6502/irq"
	"github.com/jmchacon/interp6502/memory"
)

var (
	_ = memory.Bank(&Timer{})
	_ = irq.Sender(&Timer{})
)

const (
	kREAD_TIMER_NO_INT = uint16(0x0004)
	kREAD_INT          = uint16(0x0005)
	kREAD_TIMER_INT    = uint16(0x000C)

	kWRITE_TIMER_1_NO_INT    = uint16(0x0014)
	kWRITE_TIMER_8_NO_INT    = uint16(0x0015)
	kWRITE_TIMER_64_NO_INT   = uint16(0x0016)
	kWRITE_TIMER_1024_NO_INT = uint16(0x0017)
	kWRITE_TIMER_1_INT       = uint16(0x001C)
	kWRITE_TIMER_8_INT       = uint16(0x001D)
	kWRITE_TIMER_64_INT      = uint16(0x001E)
	kWRITE_TIMER_1024_INT    = uint16(0x001F)

	kMASK_INT = uint8(0x80)

	kMASK_RW         = uint16(0x1F)
	kMASK_INT_BIT    = uint16(0x08)
	kMASK_TIMER_MULT = uint16(0x07)

	kMASK_TIMER_MULT1    = uint16(0x04)
	kMASK_TIMER_MULT8    = uint16(0x05)
	kMASK_TIMER_MULT64   = uint16(0x06)
	kMASK_TIMER_MULT1024 = uint16(0x07)

	kTIMER_MULT1    = uint16(0x0001)
	kTIMER_MULT8    = uint16(0x0008)
	kTIMER_MULT64   = uint16(0x0040)
	kTIMER_MULT1024 = uint16(0x0400)

	// Size is the number of addresses the timer decodes before aliasing.
	Size = 0x20
)

// Timer holds the complete state of the interval timer.
type Timer struct {
	clocks         uint64 // Total number of clock cycles since power on.
	timer          uint8  // Current timer value.
	timerMult      uint16 // Timer value adjustment multiplier.
	timerMultCount uint16 // The current countdown for timerMult.
	timerExpired   bool   // Whether current timer countdown has hit the end.
	interrupt      bool   // Whether timer interrupts are enabled.
	interruptOn    bool   // Current interrupt flag.
}

// New returns a powered on Timer.
func New() *Timer {
	t := &Timer{}
	t.PowerOn()
	return t
}

// PowerOn implements the interface for memory.Bank and resets the timer.
func (t *Timer) PowerOn() {
	t.clocks = 0
	t.timer = uint8(rand.Intn(256))
	// Evidently the real hardware starts up in this mode
	// which some implementation depend on to loop watching for
	// a zero crossing without bothering to program the chip first.
	t.timerMult = kTIMER_MULT1024
	t.timerMultCount = kTIMER_MULT1024 - 1
	t.timerExpired = false
	t.interrupt = false
	t.interruptOn = false
}

// Read implements the interface for memory.Bank. Reading the timer clears the
// interrupt flag and (depending on the address) enables or disables interrupts.
func (t *Timer) Read(addr uint16) uint8 {
	// Strip to 5 bits for internal regs.
	addr &= kMASK_RW

	// There's a lot of aliasing due to don't care bits.
	switch addr {
	case kREAD_TIMER_NO_INT, 0x06, 0x14, 0x16:
		t.interrupt = false
		t.interruptOn = false
		return t.timer
	case kREAD_TIMER_INT, 0x0E, 0x1C, 0x1E:
		t.interrupt = true
		t.interruptOn = false
		return t.timer
	case kREAD_INT, 0x07, 0x0D, 0x0F, 0x15, 0x17, 0x1D, 0x1F:
		if t.interruptOn {
			return kMASK_INT
		}
	}
	return 0x00
}

// Write implements the interface for memory.Bank. Writes to the timer
// addresses reload the counter, pick the prescaler and enable/disable
// interrupts. This also clears any pending interrupt.
func (t *Timer) Write(addr uint16, val uint8) {
	// Strip to 5 bits for internal regs
	addr &= kMASK_RW

	switch addr {
	case kWRITE_TIMER_1_NO_INT, kWRITE_TIMER_8_NO_INT, kWRITE_TIMER_64_NO_INT, kWRITE_TIMER_1024_NO_INT, kWRITE_TIMER_1_INT, kWRITE_TIMER_8_INT, kWRITE_TIMER_64_INT, kWRITE_TIMER_1024_INT:
		// All of these are timer setups with variations based on specific bits.
		t.timer = val
		t.timerExpired = false
		t.interruptOn = false
		t.interrupt = (addr & kMASK_INT_BIT) == kMASK_INT_BIT
		switch addr & kMASK_TIMER_MULT {
		case kMASK_TIMER_MULT1:
			t.timerMult = kTIMER_MULT1
		case kMASK_TIMER_MULT8:
			t.timerMult = kTIMER_MULT8
		case kMASK_TIMER_MULT64:
			t.timerMult = kTIMER_MULT64
		case kMASK_TIMER_MULT1024:
			t.timerMult = kTIMER_MULT1024
		}
		t.timerMultCount = t.timerMult
	}
}

// Raised implements the interface for irq.Sender. It stays raised until the
// timer is read or rewritten.
func (t *Timer) Raised() bool {
	return t.interruptOn
}

// Tick advances the timer by the given number of clock cycles. Generally
// this is passed the cycle count returned from each CPU Step.
func (t *Timer) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		t.tick()
	}
}

func (t *Timer) tick() {
	t.clocks++
	// If we expired the timer free runs (and wraps around) until the timer value gets reset.
	if t.timerExpired {
		t.timer--
		if t.interrupt {
			t.interruptOn = true
		}
		return
	}
	// When the multiplier resets we decrement the timer.
	// This allows it to run at t.timer == 0x00 until the
	// multiplier is done.
	if t.timerMultCount == t.timerMult {
		t.timer--
	}
	t.timerMultCount--
	if t.timerMultCount == 0x0000 {
		t.timerMultCount = t.timerMult
	}
	if t.timer == 0xFF {
		t.timerExpired = true
		if t.interrupt {
			t.interruptOn = true
		}
	}
}

func (t *Timer) String() string {
	return fmt.Sprintf("%.6d timer: %.2X mult: %.4X multCount: %.4X expired: %t irq: %t", t.clocks, t.timer, t.timerMult, t.timerMultCount, t.timerExpired, t.interruptOn)
}
