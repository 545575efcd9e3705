package joypad

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/padforge/padforge/uinput"
	"github.com/padforge/padforge/uinput/evdev"
)

// session holds the state shared by all profiles: the device handle, the
// previously applied button mask used for edge detection, the rumble
// callback slot and the feedback listener lifecycle.
//
// The handle and previous mask are owned by the caller's goroutine; callers
// do not issue command calls concurrently. The rumble callback is the only
// state mutated across goroutines and is swapped atomically.
type session struct {
	dev      uinput.Device
	prevMask ButtonMask

	onRumble atomic.Pointer[RumbleFunc]

	stop      atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error

	log *slog.Logger
}

// newSession registers the device, snapshots an empty previous state and
// starts the feedback listener. Registration failure is terminal: no session
// exists and nothing needs to be torn down.
func newSession(desc uinput.Descriptor, o options) (*session, error) {
	dev, err := o.backend.Register(desc)
	if err != nil {
		return nil, err
	}

	s := &session{
		dev:  dev,
		done: make(chan struct{}),
		log:  o.logger.With("pad", desc.Name),
	}
	s.log.Debug("virtual pad registered", "nodes", dev.Nodes())

	go s.listen(dev)
	return s, nil
}

// listen is the sole reader of the device's inbound event stream. It exits
// once the stop flag is set and the pending read has unblocked, or when the
// device signals closure. Unrecognized feedback is dropped.
func (s *session) listen(dev uinput.Device) {
	defer close(s.done)
	for {
		fb, err := dev.NextFeedback()
		if err != nil {
			return
		}
		if s.stop.Load() {
			return
		}
		if fb.Effect != evdev.FFRumble {
			continue
		}
		if fn := s.onRumble.Load(); fn != nil {
			(*fn)(fb.Low, fb.High)
		}
	}
}

// setPressedButtons emits events for the flags that changed between the
// previous and the new mask, then a synchronization event. The stored mask
// advances unconditionally, even without a device handle.
func (s *session) setPressedButtons(next ButtonMask, mapping []buttonMap) {
	changed := next ^ s.prevMask
	if s.dev != nil {
		if changed != 0 {
			if changed&(DPadUp|DPadDown) != 0 {
				s.emit(evdev.EvAbs, evdev.AbsHat0Y, hatValue(next, DPadUp, DPadDown))
			}
			if changed&(DPadLeft|DPadRight) != 0 {
				s.emit(evdev.EvAbs, evdev.AbsHat0X, hatValue(next, DPadLeft, DPadRight))
			}
			for _, m := range mapping {
				if changed&m.flag != 0 {
					s.emit(evdev.EvKey, m.code, pressed(next&m.flag != 0))
				}
			}
		}
		s.sync()
	}
	s.prevMask = next
}

// hatValue collapses an opposing flag pair onto one bipolar axis. The
// negative direction wins when both flags are asserted; the axis returns to
// neutral when neither is.
func hatValue(mask, negative, positive ButtonMask) int32 {
	switch {
	case mask&negative != 0:
		return -1
	case mask&positive != 0:
		return 1
	}
	return 0
}

func pressed(on bool) int32 {
	if on {
		return 1
	}
	return 0
}

// SetStick positions a stick. The vertical component is sign-inverted: the
// caller's up-positive convention maps onto evdev's down-positive axes.
func (s *session) SetStick(which Stick, x, y int16) {
	if s.dev == nil {
		return
	}
	if which == LS {
		s.emit(evdev.EvAbs, evdev.AbsX, int32(x))
		s.emit(evdev.EvAbs, evdev.AbsY, -int32(y))
	} else {
		s.emit(evdev.EvAbs, evdev.AbsRX, int32(x))
		s.emit(evdev.EvAbs, evdev.AbsRY, -int32(y))
	}
	s.sync()
}

// setTriggersAnalog passes pressure through as raw axis values; consumers
// rescale downstream.
func (s *session) setTriggersAnalog(left, right uint8) {
	if s.dev == nil {
		return
	}
	s.emit(evdev.EvAbs, evdev.AbsZ, int32(left))
	s.emit(evdev.EvAbs, evdev.AbsRZ, int32(right))
	s.sync()
}

// setTriggersDigital collapses any positive pressure to fully pressed; the
// physical pad has no analog trigger travel.
func (s *session) setTriggersDigital(left, right uint8) {
	if s.dev == nil {
		return
	}
	s.emit(evdev.EvKey, evdev.BtnTL2, pressed(left > 0))
	s.emit(evdev.EvKey, evdev.BtnTR2, pressed(right > 0))
	s.sync()
}

// SetOnRumble swaps the rumble callback. A feedback event racing the swap
// observes either the old or the new callback.
func (s *session) SetOnRumble(fn RumbleFunc) {
	if fn == nil {
		s.onRumble.Store(nil)
		return
	}
	s.onRumble.Store(&fn)
}

// Nodes returns the device node paths created by registration.
func (s *session) Nodes() []string {
	if s.dev == nil {
		return nil
	}
	return s.dev.Nodes()
}

// Close requests listener stop, wakes its blocking read, waits for it to
// exit and only then releases the device handle. Subsequent command calls
// become no-ops.
func (s *session) Close() error {
	s.closeOnce.Do(func() {
		dev := s.dev
		if dev == nil {
			return
		}
		s.stop.Store(true)
		dev.Wake()
		<-s.done
		s.closeErr = dev.Close()
		s.dev = nil
		s.log.Debug("virtual pad released")
	})
	return s.closeErr
}

func (s *session) emit(etype, code uint16, value int32) {
	// Emission failures cannot be surfaced mid-session; the pad degrades to
	// a no-op instead.
	_ = s.dev.Emit(etype, code, value)
}

func (s *session) sync() {
	_ = s.dev.Emit(evdev.EvSyn, evdev.SynReport, 0)
}
