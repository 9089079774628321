package llm

import (
	"strings"

	"github.com/lgasparetto/geoverify/constants"
)

// BuildExtractionPrompt composes the instruction text sent alongside the page
// images. The wording mirrors the checking routine used by registry staff:
// copy cells verbatim, never repair codes, never invent coordinates.
func BuildExtractionPrompt(req ExtractRequest) string {
	parts := []string{
		"Você é um assistente especialista em documentos de georreferenciamento de imóveis rurais para cartórios no Brasil.",
		"Retorne SOMENTE JSON compatível com o JSON Schema fornecido.",
		"Copie cada célula EXATAMENTE como está no documento: mantenha símbolos (°, ', \"), vírgulas decimais, hífens e sinais.",
		"NUNCA corrija ou invente códigos de vértice. NÃO troque letras (AKE ≠ AME ≠ AXE). NÃO omita vértices: a tabela continua em múltiplas páginas.",
		"NÃO confunda CPF (XXX.XXX.XXX-XX) com código INCRA/SNCR.",
	}

	switch req.DocType {
	case constants.DocMemorial:
		parts = append(parts,
			"O documento é um MEMORIAL DESCRITIVO do INCRA.",
			"Dados cadastrais: procure as linhas 'Denominação:', 'Proprietário(a):', 'Matrícula do imóvel:' (pode continuar em outra página), 'Município/UF:', 'Código de credenciamento:', 'Código INCRA/SNCR:', 'Área (Sistema Geodésico Local):', 'Perímetro (m):'.",
			"Tabela de coordenadas: título 'DESCRIÇÃO DA PARCELA', com o bloco VÉRTICE (Código, Longitude, Latitude, Altitude) e o bloco SEGMENTO VANTE (Código, Azimute, Dist. (m), Confrontações).",
			"Se o memorial estiver em texto corrido, os vértices aparecem como: \"vértice NCXC-P-1032, de coordenadas (Longitude: -48°40'19,003\\\", Latitude: -21°00'03,754\\\"...)\". Leia palavra por palavra e extraia TODOS.",
		)
	case constants.DocProject:
		parts = append(parts,
			"O documento é uma PLANTA/PROJETO de georreferenciamento.",
			"Procure a tabela de coordenadas (geralmente num canto da planta) com colunas Código | Longitude | Latitude | Altitude, ou Código | E (Este) | N (Norte).",
			"Leia TODAS as linhas da tabela; se houver 26 vértices, liste os 26.",
		)
	}

	if hint := strings.TrimSpace(req.AccreditationHint); hint != "" {
		parts = append(parts,
			"O código de credenciamento deste documento é '"+hint+"'; portanto TODOS os códigos de vértice começam com '"+hint+"-'.",
		)
	}
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		parts = append(parts, "Arquivo de origem: "+f+".")
	}

	parts = append(parts,
		"Nunca retorne null. Se um campo não existir no documento, omita a chave.",
	)
	return strings.Join(parts, "\n")
}

// BuildClassificationPrompt asks whether a single page belongs to the given
// document kind. The reply is constrained to {\"match\": true|false}.
func BuildClassificationPrompt(docType constants.DocType) string {
	var traits string
	switch docType {
	case constants.DocMemorial:
		traits = strings.Join([]string{
			"- Texto: 'MINISTÉRIO DA AGRICULTURA, PECUÁRIA E ABASTECIMENTO'",
			"- Texto: 'INSTITUTO NACIONAL DE COLONIZAÇÃO E REFORMA AGRÁRIA'",
			"- Texto: 'MEMORIAL DESCRITIVO'",
			"- Tabela com colunas: 'VÉRTICE', 'SEGMENTO VANTE', 'Confrontações'",
			"- Texto: 'DESCRIÇÃO DA PARCELA'",
		}, "\n")
	case constants.DocProject:
		traits = strings.Join([]string{
			"- Títulos: 'PLANTA DO IMÓVEL GEORREFERENCIADO' ou 'PLANTA DE SITUAÇÃO'",
			"- Identificadores: 'Código INCRA:', 'Matrícula nº:', 'Responsável técnico:', 'Propriedade:', 'Município:'",
			"- Tabela com coordenadas (colunas: 'Código', 'Longitude', 'Latitude')",
			"- Desenho/mapa com vértices (ex: AKE-M-1028)",
		}, "\n")
	}

	return "Analise esta imagem. Esta página faz parte do documento descrito abaixo?\n\n" +
		"Características do documento:\n" + traits + "\n\n" +
		"Responda SOMENTE com JSON no formato {\"match\": true} ou {\"match\": false}."
}
