package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whisperctl/whisperctl/internal/recording"
)

func newRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Reset the scratch directory and start background audio capture",
		Long: "Wipes the scratch directory, starts ffmpeg capturing from the default\n" +
			"input device in the background, and writes its pid to the pid file.\n" +
			"The capture keeps running after this command returns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			recorder := recording.NewRecorder(cfg)
			pid, err := recorder.Launch()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Capture started (pid %d), writing to %s\n", pid, cfg.AudioFile())
			return nil
		},
	}
}
