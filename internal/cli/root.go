// Package cli wires the feasibility validator's subcommands: one
// constructor function per cobra.Command.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd returns the feasibilitycheck root command.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "feasibilitycheck",
		Short: "Validate persisted PX4-style missions against vehicle state and geofence",
		Long: `feasibilitycheck loads a mission item sequence and runs it through the same
feasibility rules a navigator checks before accepting a mission upload:
command support, great-circle distance limits, geofence containment,
vehicle-type-dependent landing geometry, and item ordering.`,
	}

	root.AddCommand(CheckCmd())

	return root
}
