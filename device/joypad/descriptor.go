package joypad

import (
	"github.com/padforge/padforge/uinput"
	"github.com/padforge/padforge/uinput/evdev"
)

// Axis calibrations shared by the profiles. Sticks use the deadzone tuning
// that stock controller drivers report (fuzz 16, flat 128); see
// https://github.com/games-on-whales/wolf/issues/56 for the background.
func hatAxis(code uint16) uinput.AbsAxis {
	return uinput.AbsAxis{Code: code, Min: -1, Max: 1}
}

func stickAxis(code uint16) uinput.AbsAxis {
	return uinput.AbsAxis{Code: code, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128}
}

func triggerAxis(code uint16) uinput.AbsAxis {
	return uinput.AbsAxis{Code: code, Min: 0, Max: 255}
}

// ffEffects is the force-feedback effect set advertised by every profile.
var ffEffects = []uint16{
	evdev.FFRumble,
	evdev.FFConstant,
	evdev.FFPeriodic,
	evdev.FFSine,
	evdev.FFRamp,
	evdev.FFGain,
}
