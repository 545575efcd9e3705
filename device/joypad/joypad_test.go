package joypad_test

import (
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padforge/padforge/device/joypad"
	"github.com/padforge/padforge/internal/fakeinput"
	"github.com/padforge/padforge/uinput"
	"github.com/padforge/padforge/uinput/evdev"
)

func newTestPad(t *testing.T, profile joypad.Profile) (joypad.Joypad, *fakeinput.Device) {
	t.Helper()
	backend := fakeinput.NewBackend()
	pad, err := joypad.Create(profile, joypad.DeviceDefinition{}, joypad.WithBackend(backend))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pad.Close() })

	devs := backend.Devices()
	require.Len(t, devs, 1)
	return pad, devs[0]
}

func TestCreateNodes(t *testing.T) {
	for _, profile := range joypad.Profiles() {
		t.Run(profile.String(), func(t *testing.T) {
			pad, _ := newTestPad(t, profile)

			nodes := pad.Nodes()
			assert.Len(t, nodes, 2)
			assert.True(t, strings.HasPrefix(nodes[0], "/dev/input/event"))
			assert.True(t, strings.HasPrefix(nodes[1], "/dev/input/js"))
		})
	}
}

func TestCreateRegistrationFailure(t *testing.T) {
	backend := fakeinput.NewBackend()
	backend.RegisterErr = errors.New("capability conflict")

	for _, profile := range joypad.Profiles() {
		t.Run(profile.String(), func(t *testing.T) {
			pad, err := joypad.Create(profile, joypad.DeviceDefinition{}, joypad.WithBackend(backend))
			assert.Nil(t, pad)

			var regErr *uinput.RegistrationError
			require.ErrorAs(t, err, &regErr)
			assert.ErrorIs(t, err, backend.RegisterErr)
		})
	}
}

func TestCreateUnknownProfile(t *testing.T) {
	pad, err := joypad.Create(joypad.Profile(99), joypad.DeviceDefinition{},
		joypad.WithBackend(fakeinput.NewBackend()))
	assert.Nil(t, pad)
	assert.Error(t, err)
}

func TestParseProfile(t *testing.T) {
	type testCase struct {
		name    string
		in      string
		want    joypad.Profile
		wantErr bool
	}

	cases := []testCase{
		{name: "xboxone", in: "xboxone", want: joypad.ProfileXboxOne},
		{name: "switchpro", in: "switchpro", want: joypad.ProfileSwitchPro},
		{name: "dualsense", in: "dualsense", want: joypad.ProfileDualSense},
		{name: "unknown", in: "n64", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := joypad.ParseProfile(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultDefinitions(t *testing.T) {
	type testCase struct {
		profile joypad.Profile
		name    string
		vendor  uint16
		product uint16
	}

	cases := []testCase{
		{joypad.ProfileXboxOne, "Xbox One Wireless Controller", 0x045e, 0x02ea},
		{joypad.ProfileSwitchPro, "Nintendo Switch Pro Controller", 0x057e, 0x2009},
		{joypad.ProfileDualSense, "DualSense Wireless Controller", 0x054c, 0x0ce6},
	}

	for _, tc := range cases {
		t.Run(tc.profile.String(), func(t *testing.T) {
			def := joypad.DefaultDefinition(tc.profile)
			assert.Equal(t, tc.name, def.Name)
			assert.Equal(t, tc.vendor, def.VendorID)
			assert.Equal(t, tc.product, def.ProductID)
		})
	}
}

func TestDescriptorCapabilities(t *testing.T) {
	hasAxis := func(desc uinput.Descriptor, code uint16) bool {
		for _, a := range desc.Axes {
			if a.Code == code {
				return true
			}
		}
		return false
	}
	hasButton := func(desc uinput.Descriptor, code uint16) bool {
		for _, b := range desc.Buttons {
			if b == code {
				return true
			}
		}
		return false
	}

	t.Run("analog profiles declare trigger axes", func(t *testing.T) {
		for _, profile := range []joypad.Profile{joypad.ProfileXboxOne, joypad.ProfileDualSense} {
			_, dev := newTestPad(t, profile)
			assert.True(t, hasAxis(dev.Desc, evdev.AbsZ), profile.String())
			assert.True(t, hasAxis(dev.Desc, evdev.AbsRZ), profile.String())
		}
	})

	t.Run("digital profile declares trigger buttons only", func(t *testing.T) {
		_, dev := newTestPad(t, joypad.ProfileSwitchPro)
		assert.False(t, hasAxis(dev.Desc, evdev.AbsZ))
		assert.False(t, hasAxis(dev.Desc, evdev.AbsRZ))
		assert.True(t, hasButton(dev.Desc, evdev.BtnTL2))
		assert.True(t, hasButton(dev.Desc, evdev.BtnTR2))
		assert.True(t, hasButton(dev.Desc, evdev.BtnZ))
	})

	t.Run("stick and hat calibration", func(t *testing.T) {
		for _, profile := range joypad.Profiles() {
			_, dev := newTestPad(t, profile)
			for _, a := range dev.Desc.Axes {
				switch a.Code {
				case evdev.AbsX, evdev.AbsY, evdev.AbsRX, evdev.AbsRY:
					assert.Equal(t, int32(-32768), a.Min)
					assert.Equal(t, int32(32767), a.Max)
					assert.Equal(t, int32(16), a.Fuzz)
					assert.Equal(t, int32(128), a.Flat)
				case evdev.AbsHat0X, evdev.AbsHat0Y:
					assert.Equal(t, int32(-1), a.Min)
					assert.Equal(t, int32(1), a.Max)
				case evdev.AbsZ, evdev.AbsRZ:
					assert.Equal(t, int32(0), a.Min)
					assert.Equal(t, int32(255), a.Max)
				}
			}
		}
	})

	t.Run("rumble advertised everywhere", func(t *testing.T) {
		for _, profile := range joypad.Profiles() {
			_, dev := newTestPad(t, profile)
			assert.Contains(t, dev.Desc.Effects, evdev.FFRumble, profile.String())
		}
	})

	t.Run("dualsense hardware address becomes uniq", func(t *testing.T) {
		backend := fakeinput.NewBackend()
		mac, err := net.ParseMAC("00:1a:7d:da:71:13")
		require.NoError(t, err)
		pad, err := joypad.CreateDualSense(
			joypad.DeviceDefinition{HardwareAddr: mac},
			joypad.WithBackend(backend))
		require.NoError(t, err)
		t.Cleanup(func() { _ = pad.Close() })

		dev := backend.Devices()[0]
		assert.Equal(t, "00:1a:7d:da:71:13", dev.Desc.Uniq)
		// The rest of the default identity survives the override.
		assert.Equal(t, "DualSense Wireless Controller", dev.Desc.Name)
	})
}

func TestDualSenseExtendedCallsAreSilent(t *testing.T) {
	backend := fakeinput.NewBackend()
	pad, err := joypad.CreateDualSense(joypad.DeviceDefinition{}, joypad.WithBackend(backend))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pad.Close() })

	dev := backend.Devices()[0]
	dev.ClearEvents()

	pad.PlaceFinger(0, 100, 200)
	pad.ReleaseFinger(0)
	pad.SetMotion(joypad.MotionAccel, 0.1, 0.2, 0.3)
	pad.SetMotion(joypad.MotionGyro, 1, 2, 3)
	pad.SetBattery(joypad.BatteryCharging, 50)
	pad.SetOnLED(func(r, g, b int) {})
	pad.SetOnTriggerEffect(func(joypad.TriggerEffect) {})

	assert.Empty(t, dev.Events())
}
