package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Converter turns a multi-page TIFF into a PDF using an external tool.
// The conversion itself is an external collaborator; only invocation and
// error surfacing live here.
type Converter struct {
	runner Runner
	binary string // "magick" (or compatible "convert")
	logger *slog.Logger
}

func NewConverter(runner Runner, binary string, logger *slog.Logger) *Converter {
	if runner == nil {
		runner = NewExecRunner()
	}
	if binary == "" {
		binary = "magick"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{runner: runner, binary: binary, logger: logger}
}

// TiffToPDF converts in (a possibly multi-page TIFF) into a PDF inside
// workDir, reusing an existing artifact when present.
func (c *Converter) TiffToPDF(ctx context.Context, in, workDir string) (string, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", err
	}

	stem := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	out := filepath.Join(workDir, stem+".pdf")
	if st, err := os.Stat(out); err == nil && !st.IsDir() && st.Size() > 0 {
		c.logger.Debug("using cached tiff->pdf", "pdf", out)
		return out, nil
	}

	switch c.binary {
	case "magick":
		if _, errb, err := c.runner.Run(ctx, "magick", c.logger, in, out); err != nil {
			return "", fmt.Errorf("magick convert failed: %w (%s)", err, truncate(string(errb), 512))
		}
	case "convert":
		if _, errb, err := c.runner.Run(ctx, "convert", c.logger, in, out); err != nil {
			return "", fmt.Errorf("convert failed: %w (%s)", err, truncate(string(errb), 512))
		}
	default:
		return "", fmt.Errorf("TIFF not supported: set DocumentConfig.TiffConverter to one of: magick | convert")
	}

	if st, err := os.Stat(out); err != nil || st.Size() == 0 {
		return "", fmt.Errorf("TIFF conversion produced no output: %s", out)
	}
	return out, nil
}
