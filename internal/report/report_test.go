package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/llm"
)

func sampleTables() (llm.ParcelTable, llm.ParcelTable) {
	mem := llm.ParcelTable{Rows: []llm.ParcelRow{
		{VertexCode: "AKE-V-0166", Longitude: `-48°34'14,782"`, Latitude: `-20°50'45,291"`, Altitude: "532,78",
			SegmentCode: "AKE-M-1028", Azimuth: `140°40'`, DistanceM: "43,85", Confrontation: "Faz. Santa Rita"},
	}}
	proj := llm.ParcelTable{Rows: []llm.ParcelRow{
		{VertexCode: "AKE-V-0166", Longitude: `48°34'14,782" W`, Latitude: `20°50'45,291" S`, Altitude: "532.78",
			SegmentCode: "AKE-M-1028", Azimuth: `140°40'`, DistanceM: "43,86"},
	}}
	return mem, proj
}

func TestSummaryMatching(t *testing.T) {
	mem, _ := sampleTables()
	res := compare.Tables(mem, mem, compare.DefaultOptions())

	out := Summary(12345, res)
	assert.Contains(t, out, "Prenotação: 12345")
	assert.Contains(t, out, "os documentos CONFEREM")
	assert.NotContains(t, out, "DIVERGÊNCIAS")
}

func TestSummaryDiverging(t *testing.T) {
	mem, proj := sampleTables()
	proj.Rows[0].Azimuth = `141°00'`
	res := compare.Tables(mem, proj, compare.DefaultOptions())

	out := Summary(0, res)
	assert.NotContains(t, out, "Prenotação")
	assert.Contains(t, out, "DIVERGÊNCIAS")
	assert.Contains(t, out, "Azimute")
	assert.Contains(t, out, "NÃO CONFEREM")
}

func TestWorkbookRoundTrip(t *testing.T) {
	mem, proj := sampleTables()
	res := compare.Tables(mem, proj, compare.DefaultOptions())

	b, err := Workbook(mem, proj, res, nil)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Memorial", "Planta", "Conferência"}, f.GetSheetList())

	v, err := f.GetCellValue("Memorial", "A3")
	require.NoError(t, err)
	assert.Equal(t, "AKE-V-0166", v)

	v, err = f.GetCellValue("Memorial", "H3")
	require.NoError(t, err)
	assert.Equal(t, "Faz. Santa Rita", v)

	v, err = f.GetCellValue("Planta", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Longitude", v)

	// Comparison sheet carries one line per checked field plus the summary.
	v, err = f.GetCellValue("Conferência", "F2")
	require.NoError(t, err)
	assert.Equal(t, "CONFERE", v)

	rows, err := f.GetRows("Conferência")
	require.NoError(t, err)
	assert.Equal(t, "RESULTADO: CONFEREM", rows[len(rows)-1][0])
}
