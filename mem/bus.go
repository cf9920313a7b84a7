package mem

// Bus is the contract the cpu package depends on rather than a concrete
// *MMU, so tests can swap in a minimal fake without dragging a cartridge
// along.
type Bus interface {
	Read8(addr uint16) byte
	Write8(addr uint16, v byte)
	Read16(addr uint16) uint16
	Write16(addr uint16, v uint16)
}

// MMU wires a Cartridge and the flat Ram together, dispatching each
// address to whichever one owns it. VRAM, work RAM, echo RAM, OAM, the
// MMIO page, HRAM, and IE all live in the same backing Ram; only the
// cartridge ROM and external-RAM windows are routed elsewhere.
type MMU struct {
	Ram  *Ram
	Cart *Cartridge
}

// NewMMU builds an MMU over cart with a freshly zeroed Ram.
func NewMMU(cart *Cartridge) *MMU {
	return &MMU{Ram: NewRam(), Cart: cart}
}

func (m *MMU) Read8(addr uint16) byte {
	switch {
	case addr <= 0x7FFF:
		return m.Cart.Read(addr)
	case addr >= 0xA000 && addr <= 0xBFFF:
		return m.Cart.Read(addr)
	case addr >= 0xE000 && addr <= 0xFDFF:
		// Mirror of 0xC000-0xDDFF; real games never rely on this.
		return m.Ram.Read8(addr - 0x2000)
	default:
		return m.Ram.Read8(addr)
	}
}

func (m *MMU) Write8(addr uint16, v byte) {
	switch {
	case addr <= 0x7FFF:
		m.Cart.Write(addr, v)
	case addr >= 0xA000 && addr <= 0xBFFF:
		m.Cart.Write(addr, v)
	case addr >= 0xE000 && addr <= 0xFDFF:
		m.Ram.Write8(addr-0x2000, v)
	default:
		m.Ram.Write8(addr, v)
	}
}

func (m *MMU) Read16(addr uint16) uint16 {
	lo := m.Read8(addr)
	hi := m.Read8(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (m *MMU) Write16(addr uint16, v uint16) {
	m.Write8(addr, byte(v))
	m.Write8(addr+1, byte(v>>8))
}

// bootDefaults is the literal post-boot MMIO register state the DMG
// bootloader leaves behind before handing control to the cartridge.
var bootDefaults = [...]struct {
	addr uint16
	v    byte
}{
	{0xFF05, 0x00}, {0xFF06, 0x00}, {0xFF07, 0x00},
	{0xFF10, 0x80}, {0xFF11, 0xBF}, {0xFF12, 0xF3}, {0xFF14, 0xBF},
	{0xFF16, 0x3F}, {0xFF17, 0x00}, {0xFF19, 0xBF},
	{0xFF1A, 0x7F}, {0xFF1B, 0xFF}, {0xFF1C, 0x9F}, {0xFF1E, 0xBF},
	{0xFF20, 0xFF}, {0xFF21, 0x00}, {0xFF22, 0x00}, {0xFF23, 0xBF},
	{0xFF24, 0x77}, {0xFF25, 0xF3}, {0xFF26, 0xF1},
	{0xFF40, 0x91}, {0xFF42, 0x00}, {0xFF43, 0x00}, {0xFF45, 0x00},
	{0xFF47, 0xFC}, {0xFF48, 0xFF}, {0xFF49, 0xFF},
	{0xFF4A, 0x00}, {0xFF4B, 0x00}, {0xFFFF, 0x00},
	{0xFF50, 0x01},
}

// SimulateBootloader zeroes Ram and replays the post-boot MMIO writes
// real hardware's boot ROM performs before jumping into the cartridge at
// $0100. It does not touch the cartridge itself.
func (m *MMU) SimulateBootloader() {
	m.Ram.Reset()
	for _, d := range bootDefaults {
		m.Ram.Write8(d.addr, d.v)
	}
}
