package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dmgcore/mem"
)

func TestRegisterAddressRoundTrip(t *testing.T) {
	m := mem.NewMMU(mem.NewCartridge(nil))
	LCDC.Write(m, 0x91)
	assert.Equal(t, byte(0x91), LCDC.Read(m))
	assert.Equal(t, byte(0x91), m.Read8(0xFF40))

	SCY.Write(m, 0x10)
	assert.Equal(t, byte(0x10), m.Read8(0xFF42))
}

func TestLCDStatusModeRoundTrip(t *testing.T) {
	var s LCDStatus
	s.SetMode(VRAMRead)
	assert.Equal(t, VRAMRead, s.Mode())

	s.SetMode(HBlank)
	assert.Equal(t, HBlank, s.Mode())
}

func TestLCDStatusLeavesOtherBitsAlone(t *testing.T) {
	s := NewLCDStatus(0b0111_1000)
	s.SetMode(OAMRead)
	assert.Equal(t, byte(0b0111_1010), s.Raw())
}

func TestLCDStatusCoincidenceBit(t *testing.T) {
	var s LCDStatus
	s.SetLYCCoincidence(true)
	assert.Equal(t, byte(0b0000_0100), s.Raw())
	s.SetLYCCoincidence(false)
	assert.Equal(t, byte(0), s.Raw())
}

func TestLCDStatusInterruptEnableBits(t *testing.T) {
	s := NewLCDStatus(0b0111_1000)
	assert.True(t, s.IsHBlankInterruptEnabled())
	assert.True(t, s.IsVBlankInterruptEnabled())
	assert.True(t, s.IsOAMInterruptEnabled())
	assert.True(t, s.IsLYCCoincidenceInterruptEnabled())

	assert.False(t, NewLCDStatus(0).IsHBlankInterruptEnabled())
}

func TestLCDStatusModeNeverPanics(t *testing.T) {
	// Mode() masks to 2 bits internally, so every representable byte
	// resolves to one of the four valid modes; this asserts the masking
	// itself, not an unreachable path.
	for v := 0; v < 256; v++ {
		s := NewLCDStatus(byte(v))
		assert.NotPanics(t, func() { s.Mode() })
	}
}
