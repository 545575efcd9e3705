package joypad

import (
	"github.com/padforge/padforge/uinput"
	"github.com/padforge/padforge/uinput/evdev"
)

// SwitchProDefinition is the identity a physical Switch Pro pad reports.
var SwitchProDefinition = DeviceDefinition{
	Name:      "Nintendo Switch Pro Controller",
	VendorID:  0x057e,
	ProductID: 0x2009,
	Version:   0x8111,
}

// SwitchPro emulates a hybrid detachable pad. Its triggers have no analog
// travel, so they are declared as ordinary buttons and any positive pressure
// collapses to fully pressed.
type SwitchPro struct {
	*session
}

// CreateSwitchPro registers a Switch Pro pad and starts its feedback
// listener.
func CreateSwitchPro(def DeviceDefinition, opts ...Option) (*SwitchPro, error) {
	def = definitionOrDefault(def, ProfileSwitchPro)
	s, err := newSession(switchProDescriptor(def), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &SwitchPro{session: s}, nil
}

func switchProDescriptor(def DeviceDefinition) uinput.Descriptor {
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
			evdev.BtnZ,
		},
		Axes: []uinput.AbsAxis{
			hatAxis(evdev.AbsHat0Y), hatAxis(evdev.AbsHat0X),
			stickAxis(evdev.AbsX), stickAxis(evdev.AbsRX),
			stickAxis(evdev.AbsY), stickAxis(evdev.AbsRY),
		},
		Effects: ffEffects,
	}
}

func (j *SwitchPro) SetPressedButtons(mask ButtonMask) {
	j.setPressedButtons(mask, switchButtons)
}

func (j *SwitchPro) SetTriggers(left, right uint8) {
	j.setTriggersDigital(left, right)
}
