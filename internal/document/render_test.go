package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner replays canned output and can drop files where pdftoppm would.
type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error
	// pages, when > 0, makes the stub write page-NN.png files next to the
	// prefix passed as the last pdftoppm argument.
	pages int

	calls [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.pages > 0 && len(args) > 0 {
		prefix := args[len(args)-1]
		for i := 1; i <= s.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%02d.png", prefix, i), []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
				return nil, nil, err
			}
		}
	}
	return s.stdout, s.stderr, s.err
}

func TestPageCount(t *testing.T) {
	out := "Title:          digitalizacao\nPages:          7\nPage size:      595 x 842 pts (A4)\n"
	r := NewRenderer(&stubRunner{stdout: []byte(out)}, RendererConfig{}, nil)

	n, err := r.PageCount(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestPageCountMissingLine(t *testing.T) {
	r := NewRenderer(&stubRunner{stdout: []byte("Title: x\n")}, RendererConfig{}, nil)
	_, err := r.PageCount(context.Background(), "doc.pdf")
	assert.Error(t, err)
}

func TestRenderPages(t *testing.T) {
	stub := &stubRunner{pages: 3}
	r := NewRenderer(stub, RendererConfig{DPI: 150}, nil)

	images, err := r.RenderPages(context.Background(), "doc.pdf", nil)
	require.NoError(t, err)
	require.Len(t, images, 3)
	for i, img := range images {
		assert.Equal(t, i, img.Index)
		assert.Equal(t, "image/png", img.MIMEType)
		assert.NotEmpty(t, img.Data)
	}

	require.Len(t, stub.calls, 1)
	assert.Contains(t, stub.calls[0], "-r")
	assert.Contains(t, stub.calls[0], "150")
}

func TestRenderPagesSubset(t *testing.T) {
	// The stub writes pages 1..3 regardless; the subset filter must keep only
	// the requested indices and the command must carry the -f/-l window.
	stub := &stubRunner{pages: 3}
	r := NewRenderer(stub, RendererConfig{}, nil)

	images, err := r.RenderPages(context.Background(), "doc.pdf", []int{1})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, 1, images[0].Index)

	call := stub.calls[0]
	assert.Contains(t, call, "-f")
	assert.Contains(t, call, "2") // 1-based window for zero-based page 1
}

func TestRenderPagesEmptyOutputFails(t *testing.T) {
	r := NewRenderer(&stubRunner{}, RendererConfig{}, nil)
	_, err := r.RenderPages(context.Background(), "doc.pdf", nil)
	assert.Error(t, err)
}

func TestPageIndexFromName(t *testing.T) {
	cases := []struct {
		name string
		idx  int
		ok   bool
	}{
		{"page-01.png", 0, true},
		{"page-12.png", 11, true},
		{"page7.png", 6, true},
		{"page-00.png", 0, false},
		{"cover.png", 0, false},
		{"page-01.jpg", 0, false},
	}
	for _, tc := range cases {
		idx, ok := pageIndexFromName(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		if tc.ok {
			assert.Equal(t, tc.idx, idx, tc.name)
		}
	}
}
