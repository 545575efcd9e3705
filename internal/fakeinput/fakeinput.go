// Package fakeinput provides an in-memory implementation of the uinput
// backend contract for tests. Emitted events are recorded and folded into
// per-code levels the way an event consumer would observe them, and inbound
// force-feedback can be injected from the test.
package fakeinput

import (
	"fmt"
	"sync"

	"github.com/padforge/padforge/uinput"
	"github.com/padforge/padforge/uinput/evdev"
)

// Backend registers in-memory devices.
type Backend struct {
	// RegisterErr, when set, makes every registration fail with it.
	RegisterErr error

	mu      sync.Mutex
	devices []*Device
}

func NewBackend() *Backend { return &Backend{} }

func (b *Backend) Register(desc uinput.Descriptor) (uinput.Device, error) {
	if b.RegisterErr != nil {
		return nil, &uinput.RegistrationError{Name: desc.Name, Err: b.RegisterErr}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.devices)
	d := &Device{
		Desc: desc,
		nodes: []string{
			fmt.Sprintf("/dev/input/event%d", 100+n),
			fmt.Sprintf("/dev/input/js%d", n),
		},
		abs:      make(map[uint16]int32),
		keys:     make(map[uint16]int32),
		feedback: make(chan uinput.Feedback),
		wake:     make(chan struct{}),
	}
	b.devices = append(b.devices, d)
	return d, nil
}

// Devices returns every device registered so far.
func (b *Backend) Devices() []*Device {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Device(nil), b.devices...)
}

// Event is one recorded emission.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Device records emissions and serves injected feedback.
type Device struct {
	Desc  uinput.Descriptor
	nodes []string

	mu     sync.Mutex
	events []Event
	abs    map[uint16]int32
	keys   map[uint16]int32
	closed bool

	feedback chan uinput.Feedback
	wake     chan struct{}
	wakeOnce sync.Once
}

func (d *Device) Emit(etype, code uint16, value int32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return uinput.ErrDeviceClosed
	}
	d.events = append(d.events, Event{Type: etype, Code: code, Value: value})
	switch etype {
	case evdev.EvAbs:
		d.abs[code] = d.clamp(code, value)
	case evdev.EvKey:
		d.keys[code] = value
	}
	return nil
}

// clamp folds a raw value into the axis calibration range, mirroring what
// the kernel does before events reach consumers.
func (d *Device) clamp(code uint16, value int32) int32 {
	for _, a := range d.Desc.Axes {
		if a.Code != code {
			continue
		}
		if value < a.Min {
			return a.Min
		}
		if value > a.Max {
			return a.Max
		}
		return value
	}
	return value
}

func (d *Device) NextFeedback() (uinput.Feedback, error) {
	select {
	case fb := <-d.feedback:
		return fb, nil
	case <-d.wake:
		return uinput.Feedback{}, uinput.ErrDeviceClosed
	}
}

func (d *Device) Wake() {
	d.wakeOnce.Do(func() { close(d.wake) })
}

func (d *Device) Nodes() []string {
	return append([]string(nil), d.nodes...)
}

func (d *Device) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.Wake()
	return nil
}

// PushFeedback injects one inbound feedback event. It blocks until the
// device's reader picks it up and reports false once the device has been
// woken for shutdown.
func (d *Device) PushFeedback(fb uinput.Feedback) bool {
	select {
	case d.feedback <- fb:
		return true
	case <-d.wake:
		return false
	}
}

// Events returns a copy of everything emitted so far.
func (d *Device) Events() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Event(nil), d.events...)
}

// ClearEvents drops the recorded emissions but keeps the folded levels.
func (d *Device) ClearEvents() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = nil
}

// Abs returns the current level of an absolute axis.
func (d *Device) Abs(code uint16) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.abs[code]
}

// Key returns the current level of a button (0 released, 1 pressed).
func (d *Device) Key(code uint16) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keys[code]
}

// Closed reports whether the handle has been released.
func (d *Device) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
