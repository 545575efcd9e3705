//go:build !linux

package uinput

import "errors"

// NewBackend returns the kernel backend on Linux. On other platforms
// registration always fails; in-memory backends remain available for tests.
func NewBackend() Backend { return unsupportedBackend{} }

type unsupportedBackend struct{}

func (unsupportedBackend) Register(desc Descriptor) (Device, error) {
	return nil, &RegistrationError{Name: desc.Name, Err: errors.ErrUnsupported}
}
