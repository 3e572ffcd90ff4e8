package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whisperctl/whisperctl/internal/recording"
	"github.com/whisperctl/whisperctl/internal/state"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current recording state",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := state.NewStore(cfg.MarkerFile, cfg.ControlFile)
			out := cmd.OutOrStdout()

			if store.IsRecording() {
				fmt.Fprintln(out, "marker:  present (recording)")
			} else {
				fmt.Fprintln(out, "marker:  absent (idle)")
			}

			if word, err := store.ReadControl(); err == nil {
				fmt.Fprintf(out, "control: %s\n", word)
			} else {
				fmt.Fprintln(out, "control: (missing)")
			}

			recorder := recording.NewRecorder(cfg)
			if pid, err := recorder.ReadPid(); err == nil {
				fmt.Fprintf(out, "capture: pid %d, alive=%v\n", pid, recorder.PidAlive())
			} else {
				fmt.Fprintln(out, "capture: no pid file")
			}
			return nil
		},
	}
}
