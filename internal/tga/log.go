package tga

import (
	"log/slog"

	"tinyrender/internal/logging"
)

func logger() *slog.Logger { return logging.Logger() }
