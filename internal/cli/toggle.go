package cli

import (
	"github.com/spf13/cobra"

	"github.com/whisperctl/whisperctl/internal/logging"
	"github.com/whisperctl/whisperctl/internal/notify"
	"github.com/whisperctl/whisperctl/internal/state"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the recording marker and write the matching command word",
		Long: "Flips the recording marker: creates it and writes \"start\" when absent,\n" +
			"removes it and writes \"stop\" when present. Meant to be bound to a hotkey.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := state.NewStore(cfg.MarkerFile, cfg.ControlFile)
			recording, err := store.Toggle()
			if err != nil {
				return err
			}
			if recording {
				logging.InfoLogger.Println("Toggled on: recording requested")
				notify.Started()
			} else {
				logging.InfoLogger.Println("Toggled off: stop requested")
				notify.Stopped()
			}
			return nil
		},
	}
}
