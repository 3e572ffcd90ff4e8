package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that capture prerequisites are in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false

			if _, err := os.Stat(cfg.FfmpegPath); err == nil {
				fmt.Fprintf(out, "ok    ffmpeg at %s\n", cfg.FfmpegPath)
			} else if path, err := exec.LookPath("ffmpeg"); err == nil {
				fmt.Fprintf(out, "ok    ffmpeg in PATH at %s (configured path %s missing)\n", path, cfg.FfmpegPath)
			} else {
				fmt.Fprintf(out, "FAIL  ffmpeg not found (configured path %s, not in PATH)\n", cfg.FfmpegPath)
				failed = true
			}

			if err := os.MkdirAll(cfg.ScratchDir, os.ModePerm); err == nil {
				fmt.Fprintf(out, "ok    scratch directory %s writable\n", cfg.ScratchDir)
			} else {
				fmt.Fprintf(out, "FAIL  cannot create scratch directory %s: %v\n", cfg.ScratchDir, err)
				failed = true
			}

			controlDir := filepath.Dir(cfg.ControlFile)
			if info, err := os.Stat(controlDir); err == nil && info.IsDir() {
				fmt.Fprintf(out, "ok    control directory %s exists\n", controlDir)
			} else {
				fmt.Fprintf(out, "FAIL  control directory %s missing\n", controlDir)
				failed = true
			}

			if failed {
				return fmt.Errorf("some checks failed")
			}
			return nil
		},
	}
}
