// Package report genera el documento de reporte de ventas: un HTML
// autocontenido con estilos inline, listo para entregarse a una superficie
// de render externa (impresión, export PDF).
package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	tpl "github.com/ledgerly/ledgerly-api/internal/domain/template"
)

// Data todo lo que el documento necesita, ya formateado. Los montos llegan
// como strings del formateador de moneda; el builder no conoce decimales.
type Data struct {
	CompanyName    string
	CompanyTaxID   string
	CompanyAddress string
	From, To       time.Time

	InvoiceCount  int
	NetTotal      string
	TaxTotal      string
	GrandTotal    string
	ReceiptCount  int
	ReceiptsTotal string

	Theme       tpl.Theme
	Decorations tpl.Bundle
}

// reportTmpl documento completo con estilos inline. El chrome decorativo
// (bandas de cabecera/pie) entra ya saneado desde el builder de decoraciones,
// que solo emite markup generado por él mismo; todo texto de usuario pasa por
// el escape de html/template.
const reportTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Reporte de ventas - {{.CompanyName}}</title>
</head>
<body style="margin:0;font-family:{{.BodyFont}};color:{{.Theme.Text}};">
<div style="position:relative;{{.PageStyle}}padding:{{.Decorations.PaddingTop}}px 48px {{.Decorations.PaddingBottom}}px;">
{{.HeaderMarkup}}
<h1 style="font-family:{{.TitleFont}};color:{{.Theme.Primary}};margin-bottom:2px;">{{.CompanyName}}</h1>
{{if .CompanyTaxID}}<p style="color:{{.Theme.MutedText}};margin:0;">NIT/Tax ID: {{.CompanyTaxID}}</p>{{end}}
{{if .CompanyAddress}}<p style="color:{{.Theme.MutedText}};margin:0;">{{.CompanyAddress}}</p>{{end}}
<h2 style="font-family:{{.TitleFont}};border-bottom:{{if .Theme.ShowHeaderBorder}}2px solid {{.Theme.Border}}{{else}}none{{end}};padding-bottom:6px;">
Reporte de ventas · {{.FromFmt}} a {{.ToFmt}}
</h2>
<table style="width:100%;border-collapse:collapse;">
<tr style="background:{{.HeaderBG}};color:{{.Theme.Accent}};">
<th style="text-align:left;padding:8px;">Concepto</th>
<th style="text-align:right;padding:8px;">Cantidad</th>
<th style="text-align:right;padding:8px;">Total</th>
</tr>
<tr>
<td style="padding:8px;border-bottom:1px solid {{.Theme.Border}};">Facturas emitidas</td>
<td style="text-align:right;padding:8px;border-bottom:1px solid {{.Theme.Border}};">{{.InvoiceCount}}</td>
<td style="text-align:right;padding:8px;border-bottom:1px solid {{.Theme.Border}};">{{.NetTotal}}</td>
</tr>
<tr>
<td style="padding:8px;border-bottom:1px solid {{.Theme.Border}};">Impuestos</td>
<td style="text-align:right;padding:8px;border-bottom:1px solid {{.Theme.Border}};"></td>
<td style="text-align:right;padding:8px;border-bottom:1px solid {{.Theme.Border}};">{{.TaxTotal}}</td>
</tr>
<tr>
<td style="padding:8px;border-bottom:1px solid {{.Theme.Border}};">Recibos de pago</td>
<td style="text-align:right;padding:8px;border-bottom:1px solid {{.Theme.Border}};">{{.ReceiptCount}}</td>
<td style="text-align:right;padding:8px;border-bottom:1px solid {{.Theme.Border}};">{{.ReceiptsTotal}}</td>
</tr>
<tr>
<td style="padding:8px;font-weight:bold;">TOTAL FACTURADO</td>
<td></td>
<td style="text-align:right;padding:8px;font-weight:bold;color:{{.Theme.Primary}};">{{.GrandTotal}}</td>
</tr>
</table>
{{if .Theme.ShowWatermark}}<div style="position:absolute;top:45%;left:0;right:0;text-align:center;opacity:0.08;font-size:64px;font-family:{{.TitleFont}};">{{.Theme.WatermarkText}}</div>{{end}}
{{if .Theme.ShowFooter}}<p style="color:{{.Theme.MutedText}};font-size:11px;margin-top:32px;">Generado por Ledgerly · {{.GeneratedAt}}</p>{{end}}
{{.FooterMarkup}}
</div>
</body>
</html>`

var compiled = template.Must(template.New("report").Parse(reportTmpl))

// viewModel campos derivados que el template consume además de Data.
type viewModel struct {
	Data
	FromFmt      string
	ToFmt        string
	GeneratedAt  string
	BodyFont     template.CSS
	TitleFont    template.CSS
	HeaderBG     template.CSS
	PageStyle    template.CSS
	HeaderMarkup template.HTML
	FooterMarkup template.HTML
}

// BuildHTML renderiza el documento. Sin efectos: misma Data, mismo HTML
// (GeneratedAt viene en Data.To para mantener determinismo en tests).
func BuildHTML(d Data) (string, error) {
	vm := viewModel{
		Data:        d,
		FromFmt:     d.From.Format("02/01/2006"),
		ToFmt:       d.To.Format("02/01/2006"),
		GeneratedAt: d.To.Format("02/01/2006 15:04"),
		// font stacks y gradientes llevan comillas y paréntesis que el filtro
		// CSS de html/template rechazaría; vienen de tablas estáticas propias
		BodyFont:  template.CSS(d.Theme.BodyFont),
		TitleFont: template.CSS(d.Theme.TitleFont),
		HeaderBG:  template.CSS(d.Theme.HeaderBackground),
		// las decoraciones son markup propio del builder de plantillas, no
		// entrada de usuario; se marcan como confiables a propósito
		PageStyle:    template.CSS(d.Decorations.PageStyle),
		HeaderMarkup: template.HTML(d.Decorations.HeaderMarkup),
		FooterMarkup: template.HTML(d.Decorations.FooterMarkup),
	}
	var sb strings.Builder
	if err := compiled.Execute(&sb, vm); err != nil {
		return "", fmt.Errorf("report: renderizar documento: %w", err)
	}
	return sb.String(), nil
}
