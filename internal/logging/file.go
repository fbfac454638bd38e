package logging

import (
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/usercards/internal/filex"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions controls the rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewFileWriter returns a size-rotated writer for path, creating the parent
// directory first. The caller closes it on shutdown.
func NewFileWriter(opt FileOptions) (*lumberjack.Logger, error) {
	if opt.Path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if _, err := filex.EnsureDir(filepath.Dir(opt.Path)); err != nil {
		return nil, err
	}

	if opt.MaxSizeMB <= 0 {
		opt.MaxSizeMB = 10
	}
	if opt.MaxBackups <= 0 {
		opt.MaxBackups = 3
	}

	return &lumberjack.Logger{
		Filename:   opt.Path,
		MaxSize:    opt.MaxSizeMB,
		MaxBackups: opt.MaxBackups,
		MaxAge:     opt.MaxAgeDays,
	}, nil
}
