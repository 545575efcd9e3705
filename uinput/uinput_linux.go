//go:build linux

package uinput

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/padforge/padforge/uinput/evdev"
)

const devPath = "/dev/uinput"

// ioctl request codes from linux/uinput.h (amd64/arm64 layout).
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502

	uiSetEvBit  = 0x40045564
	uiSetKeyBit = 0x40045565
	uiSetAbsBit = 0x40045567
	uiSetFFBit  = 0x4004556b

	uiSetPhys = 0x4008556c
	uiSetUniq = 0x40085570

	uiGetSysname    = 0x8041552c
	sysnameBufSize  = 65
	uiBeginFFUpload = 0xc06855c8
	uiEndFFUpload   = 0x406855c9
	uiBeginFFErase  = 0xc00c55ca
	uiEndFFErase    = 0x400c55cb
)

const (
	inputEventSize = 24
	ffUploadSize   = 104
	ffEraseSize    = 12
)

// kernelBackend registers devices against /dev/uinput.
type kernelBackend struct {
	path string
}

// NewBackend returns the kernel uinput backend.
func NewBackend() Backend { return &kernelBackend{path: devPath} }

func (b *kernelBackend) Register(desc Descriptor) (Device, error) {
	fd, err := unix.Open(b.path, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &RegistrationError{Name: desc.Name, Err: err}
	}

	if err := applyDescriptor(fd, desc); err != nil {
		unix.Close(fd)
		return nil, &RegistrationError{Name: desc.Name, Err: err}
	}

	if err := ioctl(fd, uiDevCreate, 0); err != nil {
		unix.Close(fd)
		return nil, &RegistrationError{Name: desc.Name, Err: err}
	}

	var wake [2]int
	if err := unix.Pipe2(wake[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		ioctl(fd, uiDevDestroy, 0)
		unix.Close(fd)
		return nil, &RegistrationError{Name: desc.Name, Err: err}
	}

	d := &kernelDevice{
		fd:      fd,
		wakeR:   wake[0],
		wakeW:   wake[1],
		effects: make(map[int16]rumbleEffect),
	}
	d.nodes = discoverNodes(fd)
	return d, nil
}

// applyDescriptor enables the capability bits and writes the setup block.
// Capability sets are immutable once uiDevCreate has run.
func applyDescriptor(fd int, desc Descriptor) error {
	if len(desc.Buttons) > 0 {
		if err := ioctl(fd, uiSetEvBit, uintptr(evdev.EvKey)); err != nil {
			return err
		}
		for _, code := range desc.Buttons {
			if err := ioctl(fd, uiSetKeyBit, uintptr(code)); err != nil {
				return err
			}
		}
	}
	if len(desc.Axes) > 0 {
		if err := ioctl(fd, uiSetEvBit, uintptr(evdev.EvAbs)); err != nil {
			return err
		}
		for _, a := range desc.Axes {
			if err := ioctl(fd, uiSetAbsBit, uintptr(a.Code)); err != nil {
				return err
			}
		}
	}
	if len(desc.Effects) > 0 {
		if err := ioctl(fd, uiSetEvBit, uintptr(evdev.EvFF)); err != nil {
			return err
		}
		for _, code := range desc.Effects {
			if err := ioctl(fd, uiSetFFBit, uintptr(code)); err != nil {
				return err
			}
		}
	}
	if desc.Uniq != "" {
		// UI_SET_UNIQ needs kernel 5.7+; older kernels simply lose the
		// identity string.
		uniq := append([]byte(desc.Uniq), 0)
		_ = ioctl(fd, uiSetUniq, uintptr(unsafe.Pointer(&uniq[0])))
	}

	setup := encodeUserDev(desc)
	if _, err := unix.Write(fd, setup); err != nil {
		return err
	}
	return nil
}

// discoverNodes resolves the /dev/input nodes spawned for the new device.
// Node creation is asynchronous, so poll sysfs briefly until both the event
// and js nodes appear.
func discoverNodes(fd int) []string {
	buf := make([]byte, sysnameBufSize)
	if err := ioctl(fd, uiGetSysname, uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return nil
	}
	sysname := string(buf[:clen(buf)])
	dir := filepath.Join("/sys/devices/virtual/input", sysname)

	deadline := time.Now().Add(time.Second)
	for {
		nodes := scanInputNodes(dir)
		if len(nodes) >= 2 || time.Now().After(deadline) {
			return nodes
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func scanInputNodes(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var nodes []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "event") || strings.HasPrefix(name, "js") {
			nodes = append(nodes, filepath.Join("/dev/input", name))
		}
	}
	return nodes
}

type rumbleEffect struct {
	strong uint16
	weak   uint16
}

type kernelDevice struct {
	fd    int
	wakeR int
	wakeW int
	nodes []string

	// effects caches uploaded rumble effects by id so that play requests can
	// be resolved back to magnitudes. Only touched by the NextFeedback caller.
	effects map[int16]rumbleEffect

	closeOnce sync.Once
	closeErr  error
}

func (d *kernelDevice) Emit(etype, code uint16, value int32) error {
	var ev [inputEventSize]byte
	binary.LittleEndian.PutUint16(ev[16:18], etype)
	binary.LittleEndian.PutUint16(ev[18:20], code)
	binary.LittleEndian.PutUint32(ev[20:24], uint32(value))
	_, err := unix.Write(d.fd, ev[:])
	return err
}

func (d *kernelDevice) NextFeedback() (Feedback, error) {
	buf := make([]byte, inputEventSize)
	for {
		fds := []unix.PollFd{
			{Fd: int32(d.fd), Events: unix.POLLIN},
			{Fd: int32(d.wakeR), Events: unix.POLLIN},
		}
		if _, err := unix.Poll(fds, -1); err != nil {
			if err == unix.EINTR {
				continue
			}
			return Feedback{}, err
		}
		if fds[1].Revents != 0 {
			return Feedback{}, ErrDeviceClosed
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
			return Feedback{}, ErrDeviceClosed
		}

		n, err := unix.Read(d.fd, buf)
		if err == unix.EAGAIN || err == unix.EINTR {
			continue
		}
		if err != nil {
			return Feedback{}, err
		}
		if n < inputEventSize {
			continue
		}

		etype := binary.LittleEndian.Uint16(buf[16:18])
		code := binary.LittleEndian.Uint16(buf[18:20])
		value := int32(binary.LittleEndian.Uint32(buf[20:24]))

		fb, ok := d.decode(etype, code, value)
		if ok {
			return fb, nil
		}
	}
}

// decode turns one raw event into a Feedback. Unrecognized events report
// ok=false and are dropped by the read loop.
func (d *kernelDevice) decode(etype, code uint16, value int32) (Feedback, bool) {
	switch etype {
	case evdev.EvUinput:
		switch code {
		case evdev.UIFFUpload:
			return d.serviceUpload(uint32(value))
		case evdev.UIFFErase:
			d.serviceErase(uint32(value))
		}
	case evdev.EvFF:
		if code == evdev.FFGain {
			return Feedback{}, false
		}
		if value == 0 {
			return Feedback{Effect: evdev.FFRumble}, true
		}
		if e, ok := d.effects[int16(code)]; ok {
			return Feedback{Effect: evdev.FFRumble, Low: e.strong, High: e.weak}, true
		}
	}
	return Feedback{}, false
}

// serviceUpload runs the begin/end upload handshake and caches the effect.
// uinput_ff_upload layout: request_id u32 @0, retval s32 @4, effect @8
// (type u16 @8, id s16 @10, rumble magnitudes @24/@26), old effect @56.
func (d *kernelDevice) serviceUpload(requestID uint32) (Feedback, bool) {
	var up [ffUploadSize]byte
	binary.LittleEndian.PutUint32(up[0:4], requestID)
	if err := ioctl(d.fd, uiBeginFFUpload, uintptr(unsafe.Pointer(&up[0]))); err != nil {
		return Feedback{}, false
	}
	binary.LittleEndian.PutUint32(up[4:8], 0) // retval
	effectType := binary.LittleEndian.Uint16(up[8:10])
	effectID := int16(binary.LittleEndian.Uint16(up[10:12]))
	strong := binary.LittleEndian.Uint16(up[24:26])
	weak := binary.LittleEndian.Uint16(up[26:28])
	if err := ioctl(d.fd, uiEndFFUpload, uintptr(unsafe.Pointer(&up[0]))); err != nil {
		return Feedback{}, false
	}

	if effectType != evdev.FFRumble {
		return Feedback{}, false
	}
	d.effects[effectID] = rumbleEffect{strong: strong, weak: weak}
	return Feedback{Effect: evdev.FFRumble, Low: strong, High: weak}, true
}

// serviceErase acknowledges an erase request and drops the cached effect.
// uinput_ff_erase layout: request_id u32 @0, retval s32 @4, effect_id u32 @8.
func (d *kernelDevice) serviceErase(requestID uint32) {
	var er [ffEraseSize]byte
	binary.LittleEndian.PutUint32(er[0:4], requestID)
	if err := ioctl(d.fd, uiBeginFFErase, uintptr(unsafe.Pointer(&er[0]))); err != nil {
		return
	}
	binary.LittleEndian.PutUint32(er[4:8], 0) // retval
	effectID := binary.LittleEndian.Uint32(er[8:12])
	if err := ioctl(d.fd, uiEndFFErase, uintptr(unsafe.Pointer(&er[0]))); err != nil {
		return
	}
	delete(d.effects, int16(effectID))
}

func (d *kernelDevice) Wake() {
	_, _ = unix.Write(d.wakeW, []byte{0})
}

func (d *kernelDevice) Nodes() []string {
	nodes := make([]string, len(d.nodes))
	copy(nodes, d.nodes)
	return nodes
}

func (d *kernelDevice) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = ioctl(d.fd, uiDevDestroy, 0)
		unix.Close(d.fd)
		unix.Close(d.wakeR)
		unix.Close(d.wakeW)
	})
	return d.closeErr
}

func ioctl(fd int, req uint, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func clen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}
