package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/compare"
	"github.com/lgasparetto/geoverify/internal/llm"
)

// Workbook produces the XLSX audit workbook (as bytes): one sheet per
// extracted table plus a comparison sheet listing every checked field.
func Workbook(memorial, project llm.ParcelTable, res compare.Result, logger *slog.Logger) ([]byte, error) {
	start := time.Now()
	if logger == nil {
		logger = slog.Default()
	}

	f := excelize.NewFile()

	if err := writeTableSheet(f, "Memorial", memorial); err != nil {
		return nil, err
	}
	if err := writeTableSheet(f, "Planta", project); err != nil {
		return nil, err
	}
	if err := writeComparisonSheet(f, "Conferência", res); err != nil {
		return nil, err
	}

	// excelize's default sheet is never one of ours
	_ = f.DeleteSheet("Sheet1")
	if idx, _ := f.GetSheetIndex("Conferência"); idx >= 0 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("report.xlsx.ok",
		"memorial_rows", len(memorial.Rows),
		"project_rows", len(project.Rows),
		"divergences", res.Divergences(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// writeTableSheet lays a parcel table out the way the source documents print
// it: a VÉRTICE block and a SEGMENTO VANTE block under a two-row header,
// data from row 3.
func writeTableSheet(f *excelize.File, sheet string, table llm.ParcelTable) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	set := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	set(1, 1, "VÉRTICE")
	set(5, 1, "SEGMENTO VANTE")
	_ = f.MergeCell(sheet, "A1", "D1")
	_ = f.MergeCell(sheet, "E1", "H1")

	headers := []string{"Código", "Longitude", "Latitude", "Altitude", "Código", "Azimute", "Dist. (m)", "Confrontações"}
	for i, h := range headers {
		set(i+1, 2, h)
	}

	row := 3
	for _, r := range table.Rows {
		set(1, row, r.VertexCode)
		set(2, row, r.Longitude)
		set(3, row, r.Latitude)
		set(4, row, r.Altitude)
		set(5, row, r.SegmentCode)
		set(6, row, r.Azimuth)
		set(7, row, r.DistanceM)
		set(8, row, r.Confrontation)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "C", 18)
	_ = f.SetColWidth(sheet, "D", "G", 12)
	_ = f.SetColWidth(sheet, "H", "H", 48)
	return nil
}

func writeComparisonSheet(f *excelize.File, sheet string, res compare.Result) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	set := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	headers := []string{"Linha", "Bloco", "Campo", "Memorial", "Planta", "Situação"}
	for i, h := range headers {
		set(i+1, 1, h)
	}

	row := 2
	for _, d := range res.Fields {
		set(1, row, d.Row)
		set(2, row, sectionLabel(d.Section))
		set(3, row, d.Field)
		set(4, row, d.Memorial)
		set(5, row, d.Project)
		set(6, row, verdictLabel(d.Verdict))
		row++
	}

	row++
	set(1, row, "Vértices")
	set(2, row, fmt.Sprintf("%d conferem / %d divergem", res.Vertex.Matches, res.Vertex.Divergences))
	row++
	set(1, row, "Segmentos")
	set(2, row, fmt.Sprintf("%d conferem / %d divergem", res.Segment.Matches, res.Segment.Divergences))
	row++
	if res.OK {
		set(1, row, "RESULTADO: CONFEREM")
	} else {
		set(1, row, "RESULTADO: NÃO CONFEREM")
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "C", 18)
	_ = f.SetColWidth(sheet, "D", "E", 24)
	_ = f.SetColWidth(sheet, "F", "F", 14)
	return nil
}

func verdictLabel(v constants.Verdict) string {
	switch v {
	case constants.VerdictMatch:
		return "CONFERE"
	case constants.VerdictMismatch:
		return "DIVERGE"
	case constants.VerdictMissing:
		return "AUSENTE"
	default:
		return "EXTRA"
	}
}
