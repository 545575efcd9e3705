package joypad

import "github.com/padforge/padforge/uinput/evdev"

// ButtonMask is the set of button flags currently asserted by the caller.
// The encoder tolerates any bit combination; flags without a mapping on the
// active profile are ignored.
type ButtonMask uint32

const (
	DPadUp    ButtonMask = 0x0001
	DPadDown  ButtonMask = 0x0002
	DPadLeft  ButtonMask = 0x0004
	DPadRight ButtonMask = 0x0008

	Start ButtonMask = 0x0010
	Back  ButtonMask = 0x0020

	LeftStick  ButtonMask = 0x0040
	RightStick ButtonMask = 0x0080

	LeftButton  ButtonMask = 0x0100
	RightButton ButtonMask = 0x0200

	Home ButtonMask = 0x0400

	A ButtonMask = 0x1000
	B ButtonMask = 0x2000
	X ButtonMask = 0x4000
	Y ButtonMask = 0x8000

	// Misc is the profile-specific extra button (capture on SwitchPro).
	Misc ButtonMask = 0x400000
)

// Stick names an analog stick.
type Stick uint8

const (
	LS Stick = iota
	RS
)

type buttonMap struct {
	flag ButtonMask
	code uint16
}

// padButtons maps the flags common to every profile onto device button
// codes. The d-pad is not listed here; it collapses onto the hat axes.
var padButtons = []buttonMap{
	{Start, evdev.BtnStart},
	{Back, evdev.BtnSelect},
	{LeftStick, evdev.BtnThumbL},
	{RightStick, evdev.BtnThumbR},
	{LeftButton, evdev.BtnTL},
	{RightButton, evdev.BtnTR},
	{Home, evdev.BtnMode},
	{A, evdev.BtnSouth},
	{B, evdev.BtnEast},
	{X, evdev.BtnWest},
	{Y, evdev.BtnNorth},
}

// switchButtons additionally routes the capture button.
var switchButtons = append(padButtons[:len(padButtons):len(padButtons)],
	buttonMap{Misc, evdev.BtnZ})
