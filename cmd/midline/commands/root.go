package commands

import (
	"github.com/mosaicnetworks/midline/src/config"
	"github.com/spf13/cobra"
)

var (
	_config = config.NewDefaultConfig()
)

func init() {
	RootCmd.AddCommand(
		NewRunCmd(),
		NewSeedCmd(),
		NewReportCmd(),
		NewVersionCmd(),
	)
}

//RootCmd is the root command for midline
var RootCmd = &cobra.Command{
	Use:              "midline",
	Short:            "midline sample collector",
	TraverseChildren: true,
}
