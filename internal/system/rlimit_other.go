//go:build !unix

package system

import "log/slog"

func InitResourceLimits(log *slog.Logger) {}
