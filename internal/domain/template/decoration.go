package template

import (
	"fmt"

	"github.com/beevik/etree"
)

// Bundle chrome decorativo listo para el renderer: bandas de cabecera y pie
// como markup posicionado, padding de página por variante y un override
// opcional de estilo de página. Salida determinista de (variante, tema).
type Bundle struct {
	HeaderMarkup  string
	FooterMarkup  string
	PaddingTop    int
	PaddingBottom int
	PageStyle     string // override de estilo de página; vacío = sin override
}

// Paddings de página por variante, en píxeles (tuneados por skin).
var variantPadding = map[Variant][2]int{
	VariantClassic:     {40, 40},
	VariantPanel:       {110, 70},
	VariantStripe:      {64, 56},
	VariantAngled:      {90, 64},
	VariantBrutal:      {70, 60},
	VariantHolographic: {88, 72},
	VariantTerminal:    {60, 50},
	VariantWave:        {95, 70},
}

// BuildDecorations construye el chrome decorativo de la variante con los
// colores del tema. Variante desconocida cae a la rama wave en lugar de
// fallar. Sin aleatoriedad ni I/O.
func BuildDecorations(v Variant, th Theme) Bundle {
	pad, ok := variantPadding[v]
	if !ok {
		v = VariantWave
		pad = variantPadding[VariantWave]
	}

	b := Bundle{PaddingTop: pad[0], PaddingBottom: pad[1]}

	switch v {
	case VariantClassic:
		// banda fina superior, sin pie decorativo
		b.HeaderMarkup = band("top", 8, solidRect(th.Primary))
	case VariantPanel:
		// panel sólido de cabecera + línea de acento al pie
		b.HeaderMarkup = band("top", 96, solidRect(th.Primary))
		b.FooterMarkup = band("bottom", 6, solidRect(th.Secondary))
	case VariantStripe:
		// tres franjas horizontales primario/secundario/acento
		b.HeaderMarkup = band("top", 24, stripeRects(th.Primary, th.Secondary, th.Accent))
		b.FooterMarkup = band("bottom", 24, stripeRects(th.Accent, th.Secondary, th.Primary))
	case VariantAngled:
		// polígonos diagonales en esquinas opuestas
		b.HeaderMarkup = band("top", 72, polygon("0,0 100,0 100,28 0,72", th.Primary))
		b.FooterMarkup = band("bottom", 56, polygon("0,44 100,0 100,56 0,56", th.Secondary))
	case VariantBrutal:
		// bloques duros sin gradiente + borde grueso de página
		b.HeaderMarkup = band("top", 52, solidRect(th.Primary), offsetRect(th.Secondary))
		b.FooterMarkup = band("bottom", 40, solidRect(th.Text))
		b.PageStyle = fmt.Sprintf("border: 4px solid %s; border-radius: 0;", th.Text)
	case VariantHolographic:
		// banda con gradiente primario→secundario→acento
		b.HeaderMarkup = band("top", 80, gradientRect("holoHeader", th.Primary, th.Secondary, th.Accent))
		b.FooterMarkup = band("bottom", 48, gradientRect("holoFooter", th.Accent, th.Secondary, th.Primary))
	case VariantTerminal:
		// barra de título estilo consola + fondo de página oscuro
		b.HeaderMarkup = band("top", 36, solidRect(th.Text), terminalDots(th.Accent))
		b.PageStyle = fmt.Sprintf("background: %s; color: %s; font-family: 'JetBrains Mono', monospace;", th.Text, th.Accent)
	default: // wave
		b.HeaderMarkup = band("top", 110, wavePath(th.Primary, th.Secondary))
		b.FooterMarkup = band("bottom", 78, wavePath(th.Secondary, th.Primary))
	}

	return b
}

// ── primitivas SVG (etree) ────────────────────────────────────────────────────

// band envuelve shapes SVG en un contenedor posicionado al borde superior o
// inferior de la página, con alto fijo en px y ancho completo.
func band(edge string, height int, shapes ...*etree.Element) string {
	doc := etree.NewDocument()
	div := doc.CreateElement("div")
	div.CreateAttr("style", fmt.Sprintf("position:absolute;%s:0;left:0;right:0;height:%dpx;overflow:hidden;", edge, height))

	svg := div.CreateElement("svg")
	svg.CreateAttr("width", "100%")
	svg.CreateAttr("height", "100%")
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 100 %d", height))
	svg.CreateAttr("preserveAspectRatio", "none")
	for _, s := range shapes {
		svg.AddChild(s)
	}

	out, _ := doc.WriteToString()
	return out
}

// solidRect rectángulo de color plano que llena la banda.
func solidRect(fill string) *etree.Element {
	r := etree.NewElement("rect")
	r.CreateAttr("x", "0")
	r.CreateAttr("y", "0")
	r.CreateAttr("width", "100")
	r.CreateAttr("height", "100%")
	r.CreateAttr("fill", fill)
	return r
}

// offsetRect rectángulo desplazado detrás del principal (sombra dura brutal).
func offsetRect(fill string) *etree.Element {
	r := etree.NewElement("rect")
	r.CreateAttr("x", "2")
	r.CreateAttr("y", "6")
	r.CreateAttr("width", "100")
	r.CreateAttr("height", "100%")
	r.CreateAttr("fill", fill)
	r.CreateAttr("opacity", "0.35")
	return r
}

// stripeRects tres franjas horizontales de igual alto.
func stripeRects(c1, c2, c3 string) *etree.Element {
	g := etree.NewElement("g")
	for i, c := range []string{c1, c2, c3} {
		r := g.CreateElement("rect")
		r.CreateAttr("x", "0")
		r.CreateAttr("y", fmt.Sprintf("%d%%", i*33))
		r.CreateAttr("width", "100")
		r.CreateAttr("height", "34%")
		r.CreateAttr("fill", c)
	}
	return g
}

// polygon forma diagonal con puntos en unidades relativas del viewBox.
func polygon(points, fill string) *etree.Element {
	p := etree.NewElement("polygon")
	p.CreateAttr("points", points)
	p.CreateAttr("fill", fill)
	return p
}

// gradientRect rectángulo con gradiente lineal de tres paradas. El id del
// gradiente debe ser único dentro del documento final.
func gradientRect(id, c1, c2, c3 string) *etree.Element {
	g := etree.NewElement("g")

	defs := g.CreateElement("defs")
	lg := defs.CreateElement("linearGradient")
	lg.CreateAttr("id", id)
	lg.CreateAttr("x1", "0%")
	lg.CreateAttr("y1", "0%")
	lg.CreateAttr("x2", "100%")
	lg.CreateAttr("y2", "100%")
	for i, c := range []string{c1, c2, c3} {
		stop := lg.CreateElement("stop")
		stop.CreateAttr("offset", fmt.Sprintf("%d%%", i*50))
		stop.CreateAttr("stop-color", c)
	}

	r := g.CreateElement("rect")
	r.CreateAttr("x", "0")
	r.CreateAttr("y", "0")
	r.CreateAttr("width", "100")
	r.CreateAttr("height", "100%")
	r.CreateAttr("fill", fmt.Sprintf("url(#%s)", id))
	return g
}

// terminalDots los tres puntos de ventana de consola.
func terminalDots(fill string) *etree.Element {
	g := etree.NewElement("g")
	for i := 0; i < 3; i++ {
		c := g.CreateElement("circle")
		c.CreateAttr("cx", fmt.Sprintf("%d", 5+i*5))
		c.CreateAttr("cy", "50%")
		c.CreateAttr("r", "1.6")
		c.CreateAttr("fill", fill)
	}
	return g
}

// wavePath curva de onda entre dos colores superpuestos.
func wavePath(front, back string) *etree.Element {
	g := etree.NewElement("g")

	backPath := g.CreateElement("path")
	backPath.CreateAttr("d", "M0,0 L100,0 L100,55 C75,85 25,30 0,65 Z")
	backPath.CreateAttr("fill", back)
	backPath.CreateAttr("opacity", "0.55")

	frontPath := g.CreateElement("path")
	frontPath.CreateAttr("d", "M0,0 L100,0 L100,40 C70,70 30,15 0,50 Z")
	frontPath.CreateAttr("fill", front)

	return g
}
