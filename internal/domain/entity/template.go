package entity

// TemplateColors colores crudos del catálogo, cada uno como tripleta RGB
// (tres enteros 0–255). Una tripleta nil o incompleta se considera ausente y
// el resolver de tema aplica el color por defecto de ese campo.
type TemplateColors struct {
	Primary   []int
	Secondary []int
	Accent    []int
	Text      []int
	Border    []int
}

// TemplateFonts claves de fuente del catálogo (ej. "inter", "playfair").
// Se resuelven a font stacks CSS mediante tabla estática.
type TemplateFonts struct {
	Body  string
	Title string
}

// TemplateLayout flags de presentación de la plantilla.
// ShowHeaderBorder y ShowFooter son tri-estado (*bool): nil = no especificado,
// y el resolver los trata como true. Así un false explícito del catálogo
// sobrevive la cadena de defaults, a diferencia de un cero-valor.
type TemplateLayout struct {
	HasGradientEffects   bool
	HasDarkMode          bool
	ShowWatermark        bool
	ShowHeaderBorder     *bool
	ShowFooter           *bool
	HasBackgroundPattern bool
	WatermarkText        string
}

// Template descriptor de plantilla de documento tal como llega del catálogo.
// Inmutable: el dominio solo lo lee.
type Template struct {
	ID        string
	Name      string
	IsPremium bool
	Colors    TemplateColors
	Fonts     TemplateFonts
	Layout    TemplateLayout
}
