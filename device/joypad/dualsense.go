package joypad

import (
	"github.com/padforge/padforge/uinput"
	"github.com/padforge/padforge/uinput/evdev"
)

// DualSenseDefinition is the identity a physical DualSense pad reports.
var DualSenseDefinition = DeviceDefinition{
	Name:      "DualSense Wireless Controller",
	VendorID:  0x054c,
	ProductID: 0x0ce6,
	Version:   0x8111,
}

// MotionType names a motion-sensor data channel.
type MotionType uint8

const (
	MotionAccel MotionType = iota + 1
	MotionGyro
)

// BatteryState reports the charge state of the emulated pad.
type BatteryState uint8

const (
	BatteryDischarging BatteryState = iota + 1
	BatteryCharging
	BatteryFull
)

// TriggerEffect describes an adaptive-trigger resistance program.
type TriggerEffect struct {
	EventFlags byte
	TypeLeft   byte
	TypeRight  byte
	Left       [10]byte
	Right      [10]byte
}

// DualSense emulates a motion/haptics-capable pad. On this backend the pad
// behaves like a plain controller: touch, motion, battery, LED and
// adaptive-trigger calls are accepted and dropped. A backend built on the
// kernel HID interface can render them; callers must not infer capability
// absence from the lack of a failure.
type DualSense struct {
	*session
}

// CreateDualSense registers a DualSense pad and starts its feedback
// listener. The definition's hardware address, when set, becomes the
// device's unique identity string.
func CreateDualSense(def DeviceDefinition, opts ...Option) (*DualSense, error) {
	def = definitionOrDefault(def, ProfileDualSense)
	s, err := newSession(dualSenseDescriptor(def), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &DualSense{session: s}, nil
}

func dualSenseDescriptor(def DeviceDefinition) uinput.Descriptor {
	return uinput.Descriptor{
		Name:    def.Name,
		Bustype: evdev.BusUSB,
		Vendor:  def.VendorID,
		Product: def.ProductID,
		Version: def.Version,
		Uniq:    def.HardwareAddr.String(),
		Buttons: []uint16{
			evdev.BtnWest, evdev.BtnEast, evdev.BtnNorth, evdev.BtnSouth,
			evdev.BtnThumbL, evdev.BtnThumbR,
			evdev.BtnTR, evdev.BtnTL,
			evdev.BtnTR2, evdev.BtnTL2,
			evdev.BtnSelect, evdev.BtnMode, evdev.BtnStart,
		},
		Axes: []uinput.AbsAxis{
			hatAxis(evdev.AbsHat0Y), hatAxis(evdev.AbsHat0X),
			stickAxis(evdev.AbsX), stickAxis(evdev.AbsRX),
			stickAxis(evdev.AbsY), stickAxis(evdev.AbsRY),
			triggerAxis(evdev.AbsZ), triggerAxis(evdev.AbsRZ),
		},
		Effects: ffEffects,
	}
}

func (j *DualSense) SetPressedButtons(mask ButtonMask) {
	j.setPressedButtons(mask, padButtons)
}

func (j *DualSense) SetTriggers(left, right uint8) {
	j.setTriggersAnalog(left, right)
}

func (j *DualSense) PlaceFinger(finger int, x, y uint16) {}

func (j *DualSense) ReleaseFinger(finger int) {}

func (j *DualSense) SetMotion(typ MotionType, x, y, z float32) {}

func (j *DualSense) SetBattery(state BatteryState, percentage int) {}

func (j *DualSense) SetOnLED(fn func(r, g, b int)) {}

func (j *DualSense) SetOnTriggerEffect(fn func(TriggerEffect)) {}
