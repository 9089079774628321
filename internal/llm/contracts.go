package llm

import (
	"context"

	"github.com/lgasparetto/geoverify/constants"
)

// PageImage is one rasterized document page handed to the vision model.
type PageImage struct {
	Index    int    // zero-based page number in the source PDF
	MIMEType string // image/png or image/jpeg
	Data     []byte
}

// ParcelMetadata carries the cadastral header of a parcel description.
// All values are kept as the document spells them; normalization happens
// at comparison time.
type ParcelMetadata struct {
	Denomination      string `json:"denomination,omitempty"`
	Owner             string `json:"owner,omitempty"`
	Registrations     string `json:"registrations,omitempty"`      // matrículas, comma separated
	Municipality      string `json:"municipality,omitempty"`       // "Bebedouro-SP"
	AccreditationCode string `json:"accreditation_code,omitempty"` // 3 letters, prefixes every vertex code
	IncraCode         string `json:"incra_code,omitempty"`         // código INCRA/SNCR — never a CPF
	AreaHa            string `json:"area_ha,omitempty"`
	PerimeterM        string `json:"perimeter_m,omitempty"`
	CoordSystem       string `json:"coord_system,omitempty"` // UTM / Geográfico
	Datum             string `json:"datum,omitempty"`        // SIRGAS2000, SAD69, ...
}

// ParcelRow is one line of the DESCRIÇÃO DA PARCELA table: the vertex block
// plus its forward segment (segmento vante).
type ParcelRow struct {
	VertexCode    string `json:"vertex_code"`
	Longitude     string `json:"longitude,omitempty"`
	Latitude      string `json:"latitude,omitempty"`
	Altitude      string `json:"altitude,omitempty"`
	SegmentCode   string `json:"segment_code,omitempty"`
	Azimuth       string `json:"azimuth,omitempty"`
	DistanceM     string `json:"distance_m,omitempty"`
	Confrontation string `json:"confrontation,omitempty"`
}

// ParcelTable is the normalized shape we want from the vision model.
type ParcelTable struct {
	Metadata        ParcelMetadata `json:"metadata"`
	Rows            []ParcelRow    `json:"rows"`
	ModelConfidence float32        `json:"confidence,omitempty"` // optional (0..1)
}

// ExtractRequest describes one extraction call.
type ExtractRequest struct {
	DocType constants.DocType
	Pages   []PageImage

	// AccreditationHint anchors vertex-code reading when known (the 3-letter
	// accreditation code every vertex code starts with).
	AccreditationHint string
	FilenameHint      string
}

// TableExtractor is the interface the pipeline depends on.
type TableExtractor interface {
	ExtractTable(ctx context.Context, req ExtractRequest) (ParcelTable, []byte /*rawJSON*/, error)
}

// PageClassifier decides whether a single page belongs to a document kind.
type PageClassifier interface {
	ClassifyPage(ctx context.Context, docType constants.DocType, page PageImage) (bool, error)
}
