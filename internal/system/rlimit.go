//go:build unix

package system

import (
	"log/slog"
	"syscall"
)

// InitResourceLimits raises the open-file limit so large image sets do not
// exhaust descriptors while ffmpeg holds every input open.
func InitResourceLimits(log *slog.Logger) {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn("could not read file descriptor limit", slog.Any("error", err))
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn("could not raise file descriptor limit", slog.Any("error", err))
	}
}
