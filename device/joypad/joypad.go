// Package joypad emulates physical game controllers as virtual input
// devices.
//
// Three profiles are supported: XboxOne (wide console-style pad with analog
// triggers), SwitchPro (hybrid detachable pad with digital triggers) and
// DualSense (motion/haptics-capable pad). All profiles share the same command
// surface; they differ only in the capability descriptor advertised at
// registration and in the trigger encoding policy.
//
// Each created pad owns a background feedback listener that decodes inbound
// force-feedback requests from the host and relays rumble magnitudes to a
// caller-registered callback. Close stops the listener and releases the
// device handle; it is safe to call more than once.
package joypad

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/padforge/padforge/uinput"
)

// Profile selects one of the supported physical-controller emulation
// targets.
type Profile uint8

const (
	ProfileXboxOne Profile = iota + 1
	ProfileSwitchPro
	ProfileDualSense
)

func (p Profile) String() string {
	switch p {
	case ProfileXboxOne:
		return "xboxone"
	case ProfileSwitchPro:
		return "switchpro"
	case ProfileDualSense:
		return "dualsense"
	}
	return fmt.Sprintf("profile(%d)", uint8(p))
}

// Profiles lists all supported profiles.
func Profiles() []Profile {
	return []Profile{ProfileXboxOne, ProfileSwitchPro, ProfileDualSense}
}

// ParseProfile resolves a profile name as used on the command line.
func ParseProfile(s string) (Profile, error) {
	for _, p := range Profiles() {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown controller profile %q", s)
}

// DeviceDefinition carries the immutable identity parameters of an emulated
// pad. Controller-detection libraries classify the device from these, so the
// per-profile defaults mirror what the physical pads report.
type DeviceDefinition struct {
	Name      string
	VendorID  uint16
	ProductID uint16
	Version   uint16

	// HardwareAddr is surfaced as the device's unique identity string for
	// profiles that expose one (DualSense). Ignored elsewhere.
	HardwareAddr net.HardwareAddr
}

// RumbleFunc receives the low- and high-frequency motor magnitudes of an
// inbound rumble request.
type RumbleFunc func(lowFreq, highFreq uint16)

// Joypad is the uniform command surface of an emulated pad.
//
// Command calls never block and never fail: once creation has succeeded,
// abnormal conditions degrade to no-ops so the pad stays usable for its full
// lifetime.
type Joypad interface {
	// SetPressedButtons applies the full set of currently asserted button
	// flags. Only flags that changed since the previous call produce events.
	SetPressedButtons(mask ButtonMask)

	// SetStick positions the named analog stick. Axes are level-driven; the
	// values are applied immediately without diffing.
	SetStick(which Stick, x, y int16)

	// SetTriggers applies trigger pressure in [0, 255]. Profiles with
	// digital triggers collapse any positive pressure to fully pressed.
	SetTriggers(left, right uint8)

	// SetOnRumble replaces the rumble callback. A request racing the
	// replacement may observe either callback, never a corrupted mix.
	SetOnRumble(fn RumbleFunc)

	// Nodes returns the OS-visible device node paths created by
	// registration; empty if no device handle exists.
	Nodes() []string

	Close() error
}

type options struct {
	backend uinput.Backend
	logger  *slog.Logger
}

// Option configures pad creation.
type Option func(*options)

// WithBackend substitutes the kernel backend, primarily for tests.
func WithBackend(b uinput.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithLogger routes the pad's debug logging to a specific logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func applyOptions(opts []Option) options {
	o := options{backend: uinput.NewBackend(), logger: slog.Default()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// DefaultDefinition returns the canonical identity for a profile.
func DefaultDefinition(p Profile) DeviceDefinition {
	switch p {
	case ProfileXboxOne:
		return XboxOneDefinition
	case ProfileSwitchPro:
		return SwitchProDefinition
	case ProfileDualSense:
		return DualSenseDefinition
	}
	return DeviceDefinition{}
}

// Create builds a pad of the given profile. A zero-value definition selects
// the profile's default identity. Creation fails only when the backend
// refuses device registration.
func Create(p Profile, def DeviceDefinition, opts ...Option) (Joypad, error) {
	switch p {
	case ProfileXboxOne:
		return CreateXboxOne(def, opts...)
	case ProfileSwitchPro:
		return CreateSwitchPro(def, opts...)
	case ProfileDualSense:
		return CreateDualSense(def, opts...)
	}
	return nil, fmt.Errorf("unknown controller profile %v", p)
}

func definitionOrDefault(def DeviceDefinition, p Profile) DeviceDefinition {
	if def.Name == "" {
		fallback := DefaultDefinition(p)
		fallback.HardwareAddr = def.HardwareAddr
		return fallback
	}
	return def
}
