package vc2log

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingFile opens (or creates) a size- and age-rotated log file at
// path, in the same configuration style as the teacher's cmd/rv file
// logger.
func RotatingFile(path string, maxSizeMB, maxBackups, maxAgeDays int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}
