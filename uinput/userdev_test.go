package uinput

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padforge/padforge/uinput/evdev"
)

func TestEncodeUserDevIdentity(t *testing.T) {
	b := encodeUserDev(Descriptor{
		Name:    "Xbox One Wireless Controller",
		Bustype: evdev.BusUSB,
		Vendor:  0x045e,
		Product: 0x02ea,
		Version: 0x0408,
	})
	require.Len(t, b, userDevSize)

	name := string(b[:maxNameSize])
	assert.Equal(t, "Xbox One Wireless Controller", strings.TrimRight(name, "\x00"))

	assert.Equal(t, uint16(evdev.BusUSB), binary.LittleEndian.Uint16(b[80:82]))
	assert.Equal(t, uint16(0x045e), binary.LittleEndian.Uint16(b[82:84]))
	assert.Equal(t, uint16(0x02ea), binary.LittleEndian.Uint16(b[84:86]))
	assert.Equal(t, uint16(0x0408), binary.LittleEndian.Uint16(b[86:88]))
}

func TestEncodeUserDevNameTruncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	b := encodeUserDev(Descriptor{Name: long})

	name := string(b[:maxNameSize])
	assert.Equal(t, long[:maxNameSize-1], strings.TrimRight(name, "\x00"))
	// The final byte of the name field stays a terminator.
	assert.Equal(t, byte(0), b[maxNameSize-1])
}

func TestEncodeUserDevEffectSlots(t *testing.T) {
	withFF := encodeUserDev(Descriptor{Effects: []uint16{evdev.FFRumble}})
	assert.Equal(t, uint32(ffEffectsMax), binary.LittleEndian.Uint32(withFF[88:92]))

	withoutFF := encodeUserDev(Descriptor{})
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(withoutFF[88:92]))
}

func TestEncodeUserDevAxisCalibration(t *testing.T) {
	b := encodeUserDev(Descriptor{
		Axes: []AbsAxis{
			{Code: evdev.AbsX, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
			{Code: evdev.AbsHat0Y, Min: -1, Max: 1},
		},
	})

	readAt := func(base int, code uint16) int32 {
		off := base + 4*int(code)
		return int32(binary.LittleEndian.Uint32(b[off : off+4]))
	}
	const (
		absmaxOff  = 92
		absminOff  = absmaxOff + 4*absCount
		absfuzzOff = absminOff + 4*absCount
		absflatOff = absfuzzOff + 4*absCount
	)

	assert.Equal(t, int32(32767), readAt(absmaxOff, evdev.AbsX))
	assert.Equal(t, int32(-32768), readAt(absminOff, evdev.AbsX))
	assert.Equal(t, int32(16), readAt(absfuzzOff, evdev.AbsX))
	assert.Equal(t, int32(128), readAt(absflatOff, evdev.AbsX))

	assert.Equal(t, int32(1), readAt(absmaxOff, evdev.AbsHat0Y))
	assert.Equal(t, int32(-1), readAt(absminOff, evdev.AbsHat0Y))

	// Undeclared axes keep zeroed calibration.
	assert.Equal(t, int32(0), readAt(absmaxOff, evdev.AbsRZ))
}
