// Package daemon detaches the process from its terminal by re-executing the
// binary in a new session with stdout and stderr redirected to log files.
package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

const envKey = "WEBHOOKD_DAEMON"

const (
	StdoutLogFile = "stdout.log"
	StderrLogFile = "stderr.log"
)

// InBackground reports whether this process is the detached child.
func InBackground() bool {
	return os.Getenv(envKey) == "1"
}

// Spawn starts a copy of this process as a session leader with its output
// streams attached to log files under logDir, and returns the child pid.
// The caller is expected to exit afterwards.
func Spawn(logDir string) (int, error) {
	executable, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	stdout, stderr, err := OpenLogFiles(logDir)
	if err != nil {
		return 0, err
	}
	defer stdout.Close()
	defer stderr.Close()

	cmd := exec.Command(executable, os.Args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), envKey+"=1")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start background process: %w", err)
	}

	return cmd.Process.Pid, nil
}

// OpenLogFiles creates logDir if needed and opens the append-only stdout
// and stderr logs.
func OpenLogFiles(logDir string) (stdout, stderr *os.File, err error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	stdout, err = openAppend(filepath.Join(logDir, StdoutLogFile))
	if err != nil {
		return nil, nil, err
	}

	stderr, err = openAppend(filepath.Join(logDir, StderrLogFile))
	if err != nil {
		stdout.Close()
		return nil, nil, err
	}

	return stdout, stderr, nil
}

func openAppend(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
