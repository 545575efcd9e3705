// Package evdev declares the subset of the Linux input event protocol used by
// the virtual controller devices in this project.
//
// Values per linux/input-event-codes.h and linux/input.h.
package evdev

// Event types.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02
	EvAbs uint16 = 0x03
	EvFF  uint16 = 0x15

	// EvUinput events are delivered on the uinput side of a virtual device
	// when userspace is asked to service a force-feedback request.
	EvUinput uint16 = 0x0101
)

// Synchronization events.
const (
	SynReport uint16 = 0x00
)

// Gamepad button codes.
const (
	BtnSouth  uint16 = 0x130
	BtnEast   uint16 = 0x131
	BtnNorth  uint16 = 0x133
	BtnWest   uint16 = 0x134
	BtnZ      uint16 = 0x135
	BtnTL     uint16 = 0x136
	BtnTR     uint16 = 0x137
	BtnTL2    uint16 = 0x138
	BtnTR2    uint16 = 0x139
	BtnSelect uint16 = 0x13a
	BtnStart  uint16 = 0x13b
	BtnMode   uint16 = 0x13c
	BtnThumbL uint16 = 0x13d
	BtnThumbR uint16 = 0x13e
)

// Absolute axis codes.
const (
	AbsX     uint16 = 0x00
	AbsY     uint16 = 0x01
	AbsZ     uint16 = 0x02
	AbsRX    uint16 = 0x03
	AbsRY    uint16 = 0x04
	AbsRZ    uint16 = 0x05
	AbsHat0X uint16 = 0x10
	AbsHat0Y uint16 = 0x11
)

// Force-feedback effect types.
const (
	FFRumble   uint16 = 0x50
	FFPeriodic uint16 = 0x51
	FFConstant uint16 = 0x52
	FFSpring   uint16 = 0x53
	FFFriction uint16 = 0x54
	FFDamper   uint16 = 0x55
	FFInertia  uint16 = 0x56
	FFRamp     uint16 = 0x57
)

// Force-feedback periodic waveforms and device properties.
const (
	FFSquare   uint16 = 0x58
	FFTriangle uint16 = 0x59
	FFSine     uint16 = 0x5a
	FFSawUp    uint16 = 0x5b
	FFSawDown  uint16 = 0x5c
	FFCustom   uint16 = 0x5d

	FFGain       uint16 = 0x60
	FFAutocenter uint16 = 0x61

	FFMax uint16 = 0x7f
	FFCnt uint16 = FFMax + 1
)

// Bus types.
const (
	BusUSB       uint16 = 0x03
	BusBluetooth uint16 = 0x05
	BusVirtual   uint16 = 0x06
)

// Uinput force-feedback request codes, carried in the code field of an
// EvUinput event.
const (
	UIFFUpload uint16 = 1
	UIFFErase  uint16 = 2
)
