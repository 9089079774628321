package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/common"
	"github.com/lgasparetto/geoverify/internal/llm"
)

// Classifier splits a combined scan into the memorial pages and the
// plant/project pages using per-page vision calls.
type Classifier struct {
	vision llm.PageClassifier
	logger *slog.Logger
}

func NewClassifier(vision llm.PageClassifier, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{vision: vision, logger: logger}
}

// Split returns the subset of pages classified as docType, preserving page
// order. Returns common.ErrNoPagesClassified when nothing matches.
func (c *Classifier) Split(ctx context.Context, docType constants.DocType, pages []llm.PageImage) ([]llm.PageImage, error) {
	var matched []llm.PageImage
	for _, p := range pages {
		ok, err := c.vision.ClassifyPage(ctx, docType, p)
		if err != nil {
			// One unreadable page must not sink the whole scan; log and move on.
			c.logger.Warn("classify.page_error", "doc_type", docType, "page", p.Index, "error", err)
			continue
		}
		if ok {
			matched = append(matched, p)
		}
	}

	c.logger.Info("classify.split",
		"doc_type", docType,
		"total_pages", len(pages),
		"matched_pages", len(matched),
	)

	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrNoPagesClassified, docType)
	}
	return matched, nil
}
