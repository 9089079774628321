package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolFromFilename(t *testing.T) {
	cases := []struct {
		path string
		want int
	}{
		{"/scans/00013000/00012345.tif", 12345},
		{"00000001.tiff", 1},
		{"99999999.pdf", 99999999},
		{"12345.tif", 12345},
		{"memorial-12345.tif", 0},
		{"00000000.tif", 0},
		{"scan.pdf", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ProtocolFromFilename(tc.path), tc.path)
	}
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("tif"))
	assert.True(t, AllowedExt(".TIFF"))
	assert.True(t, AllowedExt("pdf"))
	assert.False(t, AllowedExt("png"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/scans/.partial.tif"))
	assert.False(t, IsHidden("/scans/00012345.tif"))
}
