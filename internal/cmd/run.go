package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/padforge/padforge/device/joypad"
)

// Run creates one emulated pad and keeps it alive until interrupted,
// logging inbound rumble requests.
type Run struct {
	Profile string `help:"Controller profile: xboxone, switchpro, dualsense" default:"xboxone" env:"PADFORGE_PROFILE"`

	Name          string `help:"Override the advertised device name"`
	VendorID      string `help:"Override the vendor id (hex, e.g. 0x045e)" name:"vendor-id"`
	ProductID     string `help:"Override the product id (hex)" name:"product-id"`
	DeviceVersion string `help:"Override the device version (hex)" name:"device-version"`
	HardwareAddr  string `help:"Hardware address exposed as the device identity (dualsense only)" name:"hardware-addr"`

	Defs string `help:"YAML file with per-profile device definition overrides" type:"path" env:"PADFORGE_DEFS"`

	Wiggle   bool          `help:"Continuously replay a scripted input pattern"`
	Duration time.Duration `help:"Exit after this duration (default: run until interrupted)"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger) error {
	profile, err := joypad.ParseProfile(r.Profile)
	if err != nil {
		return err
	}

	def, err := r.resolveDefinition(profile)
	if err != nil {
		return err
	}

	pad, err := joypad.Create(profile, def, joypad.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating %s pad: %w", profile, err)
	}
	defer pad.Close()

	pad.SetOnRumble(func(low, high uint16) {
		logger.Info("rumble", "low", low, "high", high)
	})
	logger.Info("virtual pad ready", "profile", profile.String(), "name", def.Name, "nodes", pad.Nodes())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if r.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Duration)
		defer cancel()
	}

	if r.Wiggle {
		wiggle(ctx, pad)
	} else {
		<-ctx.Done()
	}
	logger.Info("shutting down pad")
	return nil
}

func (r *Run) resolveDefinition(profile joypad.Profile) (joypad.DeviceDefinition, error) {
	def := joypad.DefaultDefinition(profile)

	if r.Defs != "" {
		overrides, err := loadDefinitions(r.Defs)
		if err != nil {
			return def, err
		}
		if o, ok := overrides[profile.String()]; ok {
			o.apply(&def)
		}
	}

	if r.Name != "" {
		def.Name = r.Name
	}
	if err := overrideID(&def.VendorID, r.VendorID); err != nil {
		return def, fmt.Errorf("vendor id: %w", err)
	}
	if err := overrideID(&def.ProductID, r.ProductID); err != nil {
		return def, fmt.Errorf("product id: %w", err)
	}
	if err := overrideID(&def.Version, r.DeviceVersion); err != nil {
		return def, fmt.Errorf("device version: %w", err)
	}
	if r.HardwareAddr != "" {
		mac, err := net.ParseMAC(r.HardwareAddr)
		if err != nil {
			return def, fmt.Errorf("hardware address: %w", err)
		}
		def.HardwareAddr = mac
	}
	return def, nil
}

func overrideID(dst *uint16, s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	*dst = uint16(v)
	return nil
}

// definitionOverride is one entry of a --defs YAML file, keyed by profile
// name. Zero fields keep the profile default.
type definitionOverride struct {
	Name         string `yaml:"name"`
	VendorID     uint16 `yaml:"vendor_id"`
	ProductID    uint16 `yaml:"product_id"`
	Version      uint16 `yaml:"version"`
	HardwareAddr string `yaml:"hardware_addr"`
}

func (o definitionOverride) apply(def *joypad.DeviceDefinition) {
	if o.Name != "" {
		def.Name = o.Name
	}
	if o.VendorID != 0 {
		def.VendorID = o.VendorID
	}
	if o.ProductID != 0 {
		def.ProductID = o.ProductID
	}
	if o.Version != 0 {
		def.Version = o.Version
	}
	if o.HardwareAddr != "" {
		if mac, err := net.ParseMAC(o.HardwareAddr); err == nil {
			def.HardwareAddr = mac
		}
	}
}

func loadDefinitions(path string) (map[string]definitionOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	overrides := make(map[string]definitionOverride)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return overrides, nil
}

// wiggle replays a scripted input pattern at a fixed frame rate: face
// buttons cycling once a second, sticks sweeping a circle-ish path and
// triggers ramping.
func wiggle(ctx context.Context, pad joypad.Joypad) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		frame++

		var buttons joypad.ButtonMask
		switch (frame / 60) % 4 {
		case 0:
			buttons = joypad.A
		case 1:
			buttons = joypad.B
		case 2:
			buttons = joypad.X
		default:
			buttons = joypad.Y
		}
		pad.SetPressedButtons(buttons)
		pad.SetStick(joypad.LS, int16(frame%128)*256-16384, int16(frame%64)*512-16384)
		pad.SetTriggers(uint8(frame*2), uint8(frame*3))
	}
}
