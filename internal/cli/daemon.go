package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/whisperctl/whisperctl/internal/daemon"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Watch the control file and run audio capture on start/stop",
		Long: "Runs until interrupted, watching the control file. On \"start\" the\n" +
			"scratch directory is reset and capture begins; on \"stop\" the capture\n" +
			"process is stopped gracefully so the WAV file is finalized.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return daemon.New(cfg).Run(ctx)
		},
	}
}
