//go:build !linux && !windows

package recording

import (
	"os/exec"
	"syscall"
)

// createCaptureCmd creates an exec.Cmd for ffmpeg
func createCaptureCmd(path string, args []string) *exec.Cmd {
	if path == "" {
		path = "ffmpeg"
	}
	return exec.Command(path, args...)
}

func interruptCmd(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	syscall.Kill(cmd.Process.Pid, syscall.SIGINT)
}

func forceKillCmd(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

func processAlive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}

// interruptPid sends SIGINT so ffmpeg flushes and closes the WAV header
func interruptPid(pid int) {
	syscall.Kill(pid, syscall.SIGINT)
}

func killPid(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}
