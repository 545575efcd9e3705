// Package uinput models the kernel virtual-input-device interface used to
// register emulated controllers and exchange events with them.
//
// The package exposes the interface contract (Backend, Device) plus the
// capability descriptor consumed at registration time. The real kernel
// implementation lives in uinput_linux.go; tests substitute an in-memory
// implementation.
package uinput

import (
	"errors"
	"fmt"
)

// ErrDeviceClosed is returned by a pending NextFeedback call once the device
// has been woken for shutdown or released.
var ErrDeviceClosed = errors.New("uinput: device closed")

// RegistrationError reports that the kernel rejected the capability
// descriptor or that no device handle could be obtained.
type RegistrationError struct {
	Name string
	Err  error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("uinput: registering %q: %v", e.Name, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }

// AbsAxis declares one absolute axis with its calibration tuple.
type AbsAxis struct {
	Code uint16
	Min  int32
	Max  int32
	Fuzz int32
	Flat int32
}

// Descriptor is the immutable capability advertisement for one virtual
// device. It must be fully populated before Register is called; capability
// sets cannot be changed once the device exists.
type Descriptor struct {
	Name    string
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16

	// Uniq optionally carries a unique identity string (e.g. a hardware
	// address) surfaced to consumers that read the device's uniq attribute.
	Uniq string

	Buttons []uint16
	Axes    []AbsAxis

	// Effects lists the force-feedback effect types the device advertises.
	// An empty list disables force feedback entirely.
	Effects []uint16
}

// Feedback is one decoded inbound force-feedback request.
type Feedback struct {
	// Effect is the evdev force-feedback effect type (e.g. evdev.FFRumble).
	Effect uint16
	// Low and High are the low- and high-frequency motor magnitudes for
	// rumble effects; zero otherwise.
	Low  uint16
	High uint16
}

// Device is one registered virtual input device handle.
//
// Emit and Nodes may be called from any goroutine; NextFeedback must only
// have a single caller at a time. Close releases the handle exactly once and
// must not be called while an Emit is in flight.
type Device interface {
	// Emit enqueues one event. A synchronization event (EvSyn/SynReport)
	// flushes the logical frame to consumers.
	Emit(etype, code uint16, value int32) error

	// NextFeedback blocks until an inbound force-feedback request arrives,
	// returning its decoded fields. It returns ErrDeviceClosed after Wake or
	// Close.
	NextFeedback() (Feedback, error)

	// Wake unblocks a pending or future NextFeedback call without releasing
	// the device handle.
	Wake()

	// Nodes returns the OS-visible device node paths created by
	// registration.
	Nodes() []string

	Close() error
}

// Backend registers virtual devices.
type Backend interface {
	Register(desc Descriptor) (Device, error)
}
