package cli

import (
	"github.com/spf13/cobra"

	"github.com/whisperctl/whisperctl/internal/config"
	"github.com/whisperctl/whisperctl/internal/logging"
)

var (
	verbose bool
	cfg     config.Config
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "whisperctl",
		Short: "Toggle and run speech recording via filesystem markers",
		Long: "whisperctl toggles a recording marker from a hotkey and runs the daemon\n" +
			"that watches the control file and captures audio with ffmpeg.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init("logs"); err != nil {
				return err
			}
			logging.SetVerbose(verbose)
			cfg = config.LoadConfig()
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Version = config.GetProgramVersion()

	rootCmd.AddCommand(newToggleCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newDaemonCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

func Execute() error {
	defer logging.Close()
	return NewRootCmd().Execute()
}
