package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lgasparetto/geoverify/internal/llm"
)

// Renderer rasterizes PDF pages to PNG via pdftoppm and counts pages via
// pdfinfo (poppler).
type Renderer struct {
	runner   Runner
	pdftoppm string
	pdfinfo  string
	dpi      int
	logger   *slog.Logger
}

type RendererConfig struct {
	Pdftoppm string
	Pdfinfo  string
	DPI      int
}

func NewRenderer(runner Runner, cfg RendererConfig, logger *slog.Logger) *Renderer {
	if runner == nil {
		runner = NewExecRunner()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		runner:   runner,
		pdftoppm: cfg.Pdftoppm,
		pdfinfo:  cfg.Pdfinfo,
		dpi:      cfg.DPI,
		logger:   logger,
	}
}

var rePages = regexp.MustCompile(`(?m)^Pages:\s+(\d+)$`)

// PageCount reads the page count from pdfinfo output.
func (r *Renderer) PageCount(ctx context.Context, pdf string) (int, error) {
	out, errb, err := r.runner.Run(ctx, r.pdfinfo, r.logger, pdf)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo: %w (%s)", err, truncate(string(errb), 512))
	}
	m := rePages.FindSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("pdfinfo: no Pages line for %s", pdf)
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("pdfinfo: bad page count for %s", pdf)
	}
	return n, nil
}

// RenderPages rasterizes every page of pdf into PNG images.
// pages, when non-nil, selects a subset by zero-based index.
func (r *Renderer) RenderPages(ctx context.Context, pdf string, pages []int) ([]llm.PageImage, error) {
	tmpDir, err := os.MkdirTemp("", "geoverify-pages-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	args := []string{"-png", "-r", strconv.Itoa(r.dpi)}
	if len(pages) > 0 {
		first, last := pages[0], pages[0]
		for _, p := range pages[1:] {
			if p < first {
				first = p
			}
			if p > last {
				last = p
			}
		}
		// pdftoppm is 1-based
		args = append(args, "-f", strconv.Itoa(first+1), "-l", strconv.Itoa(last+1))
	}
	args = append(args, pdf, prefix)

	if _, errb, err := r.runner.Run(ctx, r.pdftoppm, r.logger, args...); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, err
	}

	wanted := map[int]struct{}{}
	for _, p := range pages {
		wanted[p] = struct{}{}
	}

	var images []llm.PageImage
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		idx, ok := pageIndexFromName(e.Name())
		if !ok {
			continue
		}
		if len(wanted) > 0 {
			if _, keep := wanted[idx]; !keep {
				continue
			}
		}
		data, err := os.ReadFile(filepath.Join(tmpDir, e.Name()))
		if err != nil {
			return nil, err
		}
		images = append(images, llm.PageImage{Index: idx, MIMEType: "image/png", Data: data})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Index < images[j].Index })
	if len(images) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", pdf)
	}

	r.logger.Debug("rendered pdf pages", "pdf", pdf, "dpi", r.dpi, "pages", len(images))
	return images, nil
}

var rePageName = regexp.MustCompile(`^page-?(\d+)\.png$`)

// pageIndexFromName maps pdftoppm's 1-based "page-03.png" names to zero-based
// page indices.
func pageIndexFromName(name string) (int, bool) {
	m := rePageName.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
