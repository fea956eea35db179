// Package memory defines the basic interfaces for working
// with a 6502 family memory map. Since each system that is
// emulated has specific mappings (including shadowed regions
// and memory mapped devices) this is defined as an interface
// and the processor only ever issues plain 16 bit reads and writes.
package memory

const (
	ZERO_PAGE  = uint16(0x0000) // Start of the zero page.
	STACK_PAGE = uint16(0x0100) // Start of the stack page.
	PAGE_MASK  = uint16(0xFF00) // Mask to get the page portion of an address.
)

type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
}

// ReadWord returns the little endian 16 bit value at addr and addr+1.
// Each byte access wraps independently at the 64k boundary so a read
// at 0xFFFF gets its high byte from 0x0000.
func ReadWord(b Bank, addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// WriteWord stores val little endian at addr and addr+1 with the same
// wrapping rules as ReadWord. The low byte is written first.
func WriteWord(b Bank, addr uint16, val uint16) {
	b.Write(addr, uint8(val&0xFF))
	b.Write(addr+1, uint8(val>>8))
}

// ReadZPWord returns the 16 bit pointer stored in the zero page at addr.
// The high byte comes from (addr+1)&0xFF so a pointer at 0xFF wraps to 0x00
// instead of reading page 1.
func ReadZPWord(b Bank, addr uint8) uint16 {
	lo := b.Read(ZeroPage(addr))
	hi := b.Read(ZeroPage(addr + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// ZeroPage returns the full address for a zero page offset.
func ZeroPage(addr uint8) uint16 {
	return ZERO_PAGE | uint16(addr)
}

// Stack returns the full address in the stack page for the given stack pointer.
func Stack(s uint8) uint16 {
	return STACK_PAGE | uint16(s)
}

// SamePage returns true if both addresses are on the same 256 byte page.
func SamePage(a, b uint16) bool {
	return a&PAGE_MASK == b&PAGE_MASK
}
