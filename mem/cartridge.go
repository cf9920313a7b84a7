package mem

// Cartridge is the opaque port over the two cartridge-visible windows of
// the address space: ROM ($0000-$7FFF) and external RAM ($A000-$BFFF).
// MBC bank-switching is out of scope; reads/writes just index a flat
// image, which is enough for a CPU/MMU core that never needs to load a
// real multi-bank ROM.
type Cartridge struct {
	rom []byte
	ram []byte
}

// NewCartridge wraps rom (copied by reference, not defensively copied)
// with a fixed 8 KiB external RAM window.
func NewCartridge(rom []byte) *Cartridge {
	return &Cartridge{rom: rom, ram: make([]byte, 0x2000)}
}

// Read returns the byte at addr, 0xFF if addr falls past the end of a
// short ROM image (the value an unpopulated bus line floats to).
func (c *Cartridge) Read(addr uint16) byte {
	switch {
	case addr <= 0x7FFF:
		if int(addr) < len(c.rom) {
			return c.rom[addr]
		}
		return 0xFF
	case addr >= 0xA000 && addr <= 0xBFFF:
		return c.ram[addr-0xA000]
	default:
		return 0xFF
	}
}

// Write stores v in external RAM; writes into the ROM window are MBC
// register writes on real hardware and are silently ignored here.
func (c *Cartridge) Write(addr uint16, v byte) {
	if addr >= 0xA000 && addr <= 0xBFFF {
		c.ram[addr-0xA000] = v
	}
}
