package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/common"
	"github.com/lgasparetto/geoverify/internal/llm"
)

// stubClassifier answers from a fixed page-index set and can fail chosen pages.
type stubClassifier struct {
	memorial map[int]bool
	failOn   map[int]bool
}

func (s *stubClassifier) ClassifyPage(_ context.Context, docType constants.DocType, page llm.PageImage) (bool, error) {
	if s.failOn[page.Index] {
		return false, errors.New("unreadable page")
	}
	isMemorial := s.memorial[page.Index]
	if docType == constants.DocMemorial {
		return isMemorial, nil
	}
	return !isMemorial, nil
}

func pages(n int) []llm.PageImage {
	out := make([]llm.PageImage, n)
	for i := range out {
		out[i] = llm.PageImage{Index: i, MIMEType: "image/png", Data: []byte{1}}
	}
	return out
}

func TestSplit(t *testing.T) {
	c := NewClassifier(&stubClassifier{memorial: map[int]bool{0: true, 1: true}}, nil)

	mem, err := c.Split(context.Background(), constants.DocMemorial, pages(4))
	require.NoError(t, err)
	require.Len(t, mem, 2)
	assert.Equal(t, 0, mem[0].Index)
	assert.Equal(t, 1, mem[1].Index)

	proj, err := c.Split(context.Background(), constants.DocProject, pages(4))
	require.NoError(t, err)
	require.Len(t, proj, 2)
	assert.Equal(t, 2, proj[0].Index)
}

func TestSplitSkipsFailedPages(t *testing.T) {
	c := NewClassifier(&stubClassifier{
		memorial: map[int]bool{0: true, 1: true},
		failOn:   map[int]bool{1: true},
	}, nil)

	mem, err := c.Split(context.Background(), constants.DocMemorial, pages(3))
	require.NoError(t, err)
	require.Len(t, mem, 1)
	assert.Equal(t, 0, mem[0].Index)
}

func TestSplitNoPagesClassified(t *testing.T) {
	c := NewClassifier(&stubClassifier{}, nil)

	_, err := c.Split(context.Background(), constants.DocMemorial, pages(2))
	assert.ErrorIs(t, err, common.ErrNoPagesClassified)
}
