package aggregate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
)

// Markers emitted in place of file content. Every block body ends with a
// newline; file content is passed through verbatim, gaining a terminating
// newline only when it lacks one.
const (
	directoryMarker = "[Directory, skipping]\n"
	errorMarker     = "[Error reading file: %s]\n"
)

// Build concatenates the content of every path in selection order into one
// text artifact. Each path resolves independently: directories collapse to a
// skip marker and read failures to an inline error marker, so one bad path
// never aborts the rest. The exact layout is
//
//	=== {path} ===
//	{body}
//
// with blocks joined by a blank line and a trailing newline after the last
// block. Downstream consumers paste this text elsewhere; the format is a
// compatibility contract, do not change it.
func Build(ctx context.Context, selection []string, backend ports.FileSystemBackend) string {
	blocks := make([]string, 0, len(selection))
	for _, path := range selection {
		blocks = append(blocks, block(ctx, path, backend))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n") + "\n"
}

func block(ctx context.Context, path string, backend ports.FileSystemBackend) string {
	header := "=== " + path + " ===\n"

	isDir, err := backend.IsDir(ctx, path)
	if err != nil {
		logging.Logger.Debug("Aggregation stat failed", "path", path, "error", err)
		return header + fmt.Sprintf(errorMarker, errorMessage(err))
	}
	if isDir {
		return header + directoryMarker
	}

	content, err := backend.ReadFile(ctx, path)
	if err != nil {
		logging.Logger.Debug("Aggregation read failed", "path", path, "error", err)
		return header + fmt.Sprintf(errorMarker, errorMessage(err))
	}
	body := string(content)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return header + body
}

// errorMessage unwraps the backend's path prefix so the marker carries just
// the underlying cause, matching what the user would see in a shell.
func errorMessage(err error) string {
	type causer interface{ Unwrap() error }
	if c, ok := err.(causer); ok {
		if cause := c.Unwrap(); cause != nil {
			return cause.Error()
		}
	}
	return err.Error()
}
