// Package report renders comparison outcomes as the plain-text summary the
// checking clerks read and as an XLSX audit workbook with the extracted
// tables side by side.
package report

import (
	"fmt"
	"strings"

	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/internal/compare"
)

// Summary renders the clerk-facing plain-text summary. Portuguese labels on
// purpose: the output goes straight into the registry dossier.
func Summary(protocol int, res compare.Result) string {
	var b strings.Builder

	b.WriteString("RESUMO DA CONFERÊNCIA\n")
	b.WriteString("=====================\n")
	if protocol > 0 {
		fmt.Fprintf(&b, "Prenotação: %d\n", protocol)
	}
	fmt.Fprintf(&b, "Linhas no memorial: %d\n", res.MemorialRows)
	fmt.Fprintf(&b, "Linhas na planta:   %d\n", res.ProjectRows)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Vértices:  %d conferem, %d divergem\n", res.Vertex.Matches, res.Vertex.Divergences)
	fmt.Fprintf(&b, "Segmentos: %d conferem, %d divergem\n", res.Segment.Matches, res.Segment.Divergences)
	fmt.Fprintf(&b, "Total de divergências: %d\n", res.Divergences())
	b.WriteString("\n")

	if divs := divergences(res); len(divs) > 0 {
		b.WriteString("DIVERGÊNCIAS\n")
		b.WriteString("------------\n")
		for _, d := range divs {
			fmt.Fprintf(&b, "linha %d | %s | %s: %s\n", d.Row, sectionLabel(d.Section), d.Field, describe(d))
		}
		b.WriteString("\n")
	}

	if res.OK {
		b.WriteString("RESULTADO: os documentos CONFEREM.\n")
	} else {
		b.WriteString("RESULTADO: os documentos NÃO CONFEREM. Conferir manualmente as divergências acima.\n")
	}
	return b.String()
}

func divergences(res compare.Result) []compare.FieldDiff {
	var out []compare.FieldDiff
	for _, f := range res.Fields {
		if f.Verdict != constants.VerdictMatch {
			out = append(out, f)
		}
	}
	return out
}

func sectionLabel(s constants.Section) string {
	if s == constants.SectionVertex {
		return "VÉRTICE"
	}
	return "SEGMENTO VANTE"
}

func describe(d compare.FieldDiff) string {
	switch d.Verdict {
	case constants.VerdictMissing:
		return fmt.Sprintf("AUSENTE na planta (memorial: %q)", d.Memorial)
	case constants.VerdictExtra:
		return fmt.Sprintf("EXTRA na planta (planta: %q)", d.Project)
	default:
		return fmt.Sprintf("memorial %q ≠ planta %q", d.Memorial, d.Project)
	}
}
