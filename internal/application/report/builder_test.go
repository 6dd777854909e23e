package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledgerly-api/internal/application/report"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	tpl "github.com/ledgerly/ledgerly-api/internal/domain/template"
)

func sampleData() report.Data {
	descriptor := entity.Template{ID: "neoBrutalist", Name: "Neo Brutalist"}
	variant := tpl.ResolveVariant(descriptor.ID, &descriptor)
	theme := tpl.ResolveTheme(descriptor)
	return report.Data{
		CompanyName:   "Panadería La Espiga",
		CompanyTaxID:  "900123456-7",
		From:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:            time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC),
		InvoiceCount:  12,
		NetTotal:      "$10,000.00",
		TaxTotal:      "$1,900.00",
		GrandTotal:    "$11,900.00",
		ReceiptCount:  9,
		ReceiptsTotal: "$8,400.00",
		Theme:         theme,
		Decorations:   tpl.BuildDecorations(variant, theme),
	}
}

func TestBuildHTML_DocumentoAutocontenido(t *testing.T) {
	html, err := report.BuildHTML(sampleData())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<meta charset="utf-8">`)
	assert.Contains(t, html, "Panadería La Espiga")
	assert.Contains(t, html, "900123456-7")
	// montos ya formateados pasan tal cual
	assert.Contains(t, html, "$11,900.00")
	assert.Contains(t, html, "$8,400.00")
	// estilos inline, sin hojas externas
	assert.NotContains(t, html, "<link")
	assert.NotContains(t, html, "stylesheet")
}

// TestBuildHTML_TemaAplicado colores del tema y chrome de la variante
// terminan en el documento.
func TestBuildHTML_TemaAplicado(t *testing.T) {
	d := sampleData()
	html, err := report.BuildHTML(d)
	require.NoError(t, err)

	assert.Contains(t, html, d.Theme.Primary)
	assert.Contains(t, html, "position:absolute")       // banda decorativa
	assert.Contains(t, html, "border: 4px solid")       // page style brutal
	assert.NotContains(t, html, "ZgotmplZ")             // nada rechazado por el sanitizador
}

// TestBuildHTML_EscapaTextoDeUsuario el nombre de empresa es entrada externa
// y debe escaparse.
func TestBuildHTML_EscapaTextoDeUsuario(t *testing.T) {
	d := sampleData()
	d.CompanyName = `Acme <script>alert("x")</script>`
	html, err := report.BuildHTML(d)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestBuildHTML_Determinista(t *testing.T) {
	d := sampleData()
	first, err1 := report.BuildHTML(d)
	second, err2 := report.BuildHTML(d)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

// TestBuildHTML_FlagsChrome watermark y footer respetan el tema.
func TestBuildHTML_FlagsChrome(t *testing.T) {
	d := sampleData()
	d.Theme.ShowWatermark = true
	d.Theme.WatermarkText = "BORRADOR"
	html, err := report.BuildHTML(d)
	require.NoError(t, err)
	assert.Contains(t, html, "BORRADOR")

	d.Theme.ShowWatermark = false
	d.Theme.ShowFooter = false
	html, err = report.BuildHTML(d)
	require.NoError(t, err)
	assert.NotContains(t, html, "BORRADOR")
	assert.NotContains(t, html, "Generado por Ledgerly")
}
