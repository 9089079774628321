package document

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pdfWriter drops a fake PDF at the output path (last argument), like
// ImageMagick would.
type pdfWriter struct{ calls int }

func (w *pdfWriter) Run(_ context.Context, _ string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	w.calls++
	return nil, nil, os.WriteFile(args[len(args)-1], []byte("%PDF-1.4"), 0o644)
}

func TestTiffToPDF(t *testing.T) {
	work := t.TempDir()
	runner := &pdfWriter{}
	c := NewConverter(runner, "magick", nil)

	out, err := c.TiffToPDF(context.Background(), "/scans/00013000/00012345.tif", work)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(work, "00012345.pdf"), out)
	assert.Equal(t, 1, runner.calls)

	// Second call reuses the cached artifact.
	out2, err := c.TiffToPDF(context.Background(), "/scans/00013000/00012345.tif", work)
	require.NoError(t, err)
	assert.Equal(t, out, out2)
	assert.Equal(t, 1, runner.calls)
}

func TestTiffToPDFUnknownBinary(t *testing.T) {
	c := NewConverter(&pdfWriter{}, "ghostscript", nil)
	_, err := c.TiffToPDF(context.Background(), "in.tif", t.TempDir())
	assert.Error(t, err)
}

// noopRunner succeeds without producing any output file.
type noopRunner struct{}

func (noopRunner) Run(context.Context, string, *slog.Logger, ...string) ([]byte, []byte, error) {
	return nil, nil, nil
}

func TestTiffToPDFEmptyOutputFails(t *testing.T) {
	c := NewConverter(noopRunner{}, "convert", nil)
	_, err := c.TiffToPDF(context.Background(), "in.tif", t.TempDir())
	assert.Error(t, err)
}
