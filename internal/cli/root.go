package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/marquee/config"
)

func Execute() error {
	return newRootCmd().Execute()
}

type options struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "marquee",
		Short:         "Film festival carousel",
		Long:          "marquee runs the festival carousel in a window, replays gesture scripts headlessly, and manages its TOML configuration.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./marquee.toml, then the user config dir)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(opts),
		newSimulateCmd(opts),
		newConfigCmd(opts),
	)
	return rootCmd
}

func (o *options) load() (config.File, error) {
	return config.Load(viper.New(), o.configPath)
}
