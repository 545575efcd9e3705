package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/padforge/padforge/device/joypad"
)

// Profiles lists the supported controller profiles and their default
// identities.
type Profiles struct{}

func (p *Profiles) Run() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tDEVICE NAME\tVID\tPID\tVERSION")
	for _, profile := range joypad.Profiles() {
		def := joypad.DefaultDefinition(profile)
		fmt.Fprintf(w, "%s\t%s\t%04x\t%04x\t%04x\n",
			profile, def.Name, def.VendorID, def.ProductID, def.Version)
	}
	return w.Flush()
}
