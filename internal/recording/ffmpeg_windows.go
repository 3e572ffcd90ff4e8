//go:build windows

package recording

import (
	"os/exec"
	"strconv"
	"syscall"

	"golang.org/x/sys/windows"
)

// createCaptureCmd creates an exec.Cmd for ffmpeg with Windows-specific
// process attributes so no console window flashes up on capture start
func createCaptureCmd(path string, args []string) *exec.Cmd {
	if path == "" {
		path = "ffmpeg.exe"
	}
	cmd := exec.Command(path, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
	return cmd
}

// There is no SIGINT equivalent for a detached console process; the graceful
// path is the "q" written to ffmpeg's stdin, after which we go straight to
// taskkill.
func interruptCmd(cmd *exec.Cmd) {}

func forceKillCmd(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	kill := exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(cmd.Process.Pid))
	return kill.Run()
}

func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == 259 // STILL_ACTIVE
}

func interruptPid(pid int) {}

func killPid(pid int) error {
	kill := exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid))
	return kill.Run()
}
