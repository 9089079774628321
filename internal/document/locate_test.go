package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgasparetto/geoverify/internal/common"
)

func TestTiffPathFor(t *testing.T) {
	cases := []struct {
		protocol int
		want     string
	}{
		{12345, filepath.Join("00013000", "00012345.tif")},
		{13000, filepath.Join("00013000", "00013000.tif")}, // exact multiple stays in its own bucket
		{13001, filepath.Join("00014000", "00013001.tif")},
		{1, filepath.Join("00001000", "00000001.tif")},
		{999, filepath.Join("00001000", "00000999.tif")},
		{99999999, filepath.Join("100000000", "99999999.tif")},
	}
	for _, tc := range cases {
		got, err := TiffPathFor("/scans", tc.protocol)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/scans", tc.want), got, "protocol %d", tc.protocol)
	}
}

func TestTiffPathForRejectsOutOfRange(t *testing.T) {
	for _, p := range []int{0, -5, 100000000} {
		_, err := TiffPathFor("/scans", p)
		assert.Error(t, err, "protocol %d", p)
	}
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "00013000")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00012345.tif"), []byte("II*"), 0o644))

	path, err := Locate(root, 12345)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "00012345.tif"), path)

	_, err = Locate(root, 12346)
	assert.ErrorIs(t, err, common.ErrDocumentNotFound)
}

func TestLocateRejectsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "00013000", "00012345.tif"), 0o755))

	_, err := Locate(root, 12345)
	assert.ErrorIs(t, err, common.ErrDocumentNotFound)
}
