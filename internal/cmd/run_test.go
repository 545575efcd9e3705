package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padforge/padforge/device/joypad"
)

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveDefinitionDefaults(t *testing.T) {
	r := &Run{}
	def, err := r.resolveDefinition(joypad.ProfileXboxOne)
	require.NoError(t, err)
	assert.Equal(t, joypad.DefaultDefinition(joypad.ProfileXboxOne), def)
}

func TestResolveDefinitionFlagOverrides(t *testing.T) {
	r := &Run{
		Name:          "My Pad",
		VendorID:      "0x1234",
		ProductID:     "0xabcd",
		DeviceVersion: "0x0100",
		HardwareAddr:  "00:1a:7d:da:71:13",
	}
	def, err := r.resolveDefinition(joypad.ProfileDualSense)
	require.NoError(t, err)
	assert.Equal(t, "My Pad", def.Name)
	assert.Equal(t, uint16(0x1234), def.VendorID)
	assert.Equal(t, uint16(0xabcd), def.ProductID)
	assert.Equal(t, uint16(0x0100), def.Version)
	assert.Equal(t, "00:1a:7d:da:71:13", def.HardwareAddr.String())
}

func TestResolveDefinitionBadHexRejected(t *testing.T) {
	r := &Run{VendorID: "zz"}
	_, err := r.resolveDefinition(joypad.ProfileXboxOne)
	assert.Error(t, err)
}

func TestResolveDefinitionBadMACRejected(t *testing.T) {
	r := &Run{HardwareAddr: "not-a-mac"}
	_, err := r.resolveDefinition(joypad.ProfileDualSense)
	assert.Error(t, err)
}

func TestResolveDefinitionFromDefsFile(t *testing.T) {
	path := writeDefs(t, `
switchpro:
  name: Custom Switch Pad
  vendor_id: 0x1111
dualsense:
  hardware_addr: "00:1a:7d:da:71:13"
`)

	r := &Run{Defs: path}

	def, err := r.resolveDefinition(joypad.ProfileSwitchPro)
	require.NoError(t, err)
	assert.Equal(t, "Custom Switch Pad", def.Name)
	assert.Equal(t, uint16(0x1111), def.VendorID)
	// Unset fields keep the profile default.
	assert.Equal(t, uint16(0x2009), def.ProductID)

	def, err = r.resolveDefinition(joypad.ProfileDualSense)
	require.NoError(t, err)
	assert.Equal(t, "00:1a:7d:da:71:13", def.HardwareAddr.String())

	// Profiles without an entry are untouched.
	def, err = r.resolveDefinition(joypad.ProfileXboxOne)
	require.NoError(t, err)
	assert.Equal(t, joypad.DefaultDefinition(joypad.ProfileXboxOne), def)
}

func TestResolveDefinitionFlagBeatsDefsFile(t *testing.T) {
	path := writeDefs(t, `
xboxone:
  name: From File
`)

	r := &Run{Defs: path, Name: "From Flag"}
	def, err := r.resolveDefinition(joypad.ProfileXboxOne)
	require.NoError(t, err)
	assert.Equal(t, "From Flag", def.Name)
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	_, err := loadDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDefinitionsMalformed(t *testing.T) {
	path := writeDefs(t, "{not yaml: [")
	_, err := loadDefinitions(path)
	assert.Error(t, err)
}
