//go:build linux

package recording

import (
	"os/exec"
	"syscall"
)

// createCaptureCmd creates an exec.Cmd for ffmpeg. The process gets its own
// group so a group kill cannot take the daemon down with it.
func createCaptureCmd(path string, args []string) *exec.Cmd {
	if path == "" {
		path = "ffmpeg"
	}
	cmd := exec.Command(path, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
	return cmd
}

func interruptCmd(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil {
		syscall.Kill(-pgid, syscall.SIGINT)
		return
	}
	syscall.Kill(cmd.Process.Pid, syscall.SIGINT)
}

func forceKillCmd(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	// Kill the entire process group
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		return syscall.Kill(cmd.Process.Pid, syscall.SIGKILL)
	}
	return syscall.Kill(-pgid, syscall.SIGKILL)
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
