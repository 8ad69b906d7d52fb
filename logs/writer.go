package logs

import (
	"io"
	"os"

	"github.com/xyproto/env/v2"
)

type Writer io.Writer

// Writer is stderr, or the file named by BCC_LOG_FILE.
func (Module) Writer() Writer {
	path := env.Str("BCC_LOG_FILE")
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}
