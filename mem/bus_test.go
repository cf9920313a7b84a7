package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEchoRamMirrorsWorkRam(t *testing.T) {
	m := NewMMU(NewCartridge(nil))
	m.Write8(0xC010, 0x42)
	assert.Equal(t, byte(0x42), m.Read8(0xE010))

	m.Write8(0xE020, 0x99)
	assert.Equal(t, byte(0x99), m.Read8(0xC020))
}

func TestReadWrite16RoundTrip(t *testing.T) {
	m := NewMMU(NewCartridge(nil))
	m.Write16(0xC000, 0xBEEF)
	assert.Equal(t, byte(0xEF), m.Read8(0xC000))
	assert.Equal(t, byte(0xBE), m.Read8(0xC001))
	assert.Equal(t, uint16(0xBEEF), m.Read16(0xC000))
}

func TestCartridgeRomReadOnly(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0104] = 0xCE
	m := NewMMU(NewCartridge(rom))

	assert.Equal(t, byte(0xCE), m.Read8(0x0104))
	m.Write8(0x0104, 0xFF) // MBC register write; ignored by this port
	assert.Equal(t, byte(0xCE), m.Read8(0x0104))
}

func TestCartridgeExternalRamWritable(t *testing.T) {
	m := NewMMU(NewCartridge(nil))
	m.Write8(0xA010, 0x7F)
	assert.Equal(t, byte(0x7F), m.Read8(0xA010))
}

func TestSimulateBootloaderAppliesDefaults(t *testing.T) {
	m := NewMMU(NewCartridge(nil))
	m.Ram.Write8(0xFF40, 0x00)

	m.SimulateBootloader()

	assert.Equal(t, byte(0x91), m.Read8(0xFF40))
	assert.Equal(t, byte(0xBF), m.Read8(0xFF11))
	assert.Equal(t, byte(0x01), m.Read8(0xFF50))
}
