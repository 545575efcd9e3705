package joypad

import (
	"github.com/padforge/padforge/uinput"
	"github.com/padforge/padforge/uinput/evdev"
)

// XboxOneDefinition is the identity a physical Xbox One S pad reports.
var XboxOneDefinition = DeviceDefinition{
	Name:      "Xbox One Wireless Controller",
	VendorID:  0x045e,
	ProductID: 0x02ea,
	Version:   0x0408,
}

// XboxOne emulates a wide console-style pad with analog triggers.
type XboxOne struct {
	*session
}

// CreateXboxOne registers an Xbox One pad and starts its feedback listener.
func CreateXboxOne(def DeviceDefinition, opts ...Option) (*XboxOne, error) {
	def = definitionOrDefault(def, ProfileXboxOne)
	s, err := newSession(xboxOneDescriptor(def), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &XboxOne{session: s}, nil
}

func xboxOneDescriptor(def DeviceDefinition) uinput.Descriptor {
	return uinput.Descriptor{
		Name:    def.Name,
		Bustype: evdev.BusUSB,
		Vendor:  def.VendorID,
		Product: def.ProductID,
		Version: def.Version,
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

func (j *XboxOne) SetPressedButtons(mask ButtonMask) {
	j.setPressedButtons(mask, padButtons)
}

func (j *XboxOne) SetTriggers(left, right uint8) {
	j.setTriggersAnalog(left, right)
}
