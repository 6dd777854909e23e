package dto

// ThemeDTO tema resuelto listo para el renderer del cliente.
type ThemeDTO struct {
	Primary          string `json:"primary"`
	Secondary        string `json:"secondary"`
	Accent           string `json:"accent"`
	Text             string `json:"text"`
	Border           string `json:"border"`
	HeaderBackground string `json:"header_background"`
	MutedText        string `json:"muted_text"`
	BodyFont         string `json:"body_font"`
	TitleFont        string `json:"title_font"`
	ShowHeaderBorder bool   `json:"show_header_border"`
	ShowFooter       bool   `json:"show_footer"`
	ShowWatermark    bool   `json:"show_watermark"`
	HasPattern       bool   `json:"has_background_pattern"`
	DarkMode         bool   `json:"dark_mode"`
	WatermarkText    string `json:"watermark_text"`
}

// DecorationDTO chrome decorativo de la variante.
type DecorationDTO struct {
	HeaderMarkup  string `json:"header_markup"`
	FooterMarkup  string `json:"footer_markup"`
	PaddingTop    int    `json:"padding_top"`
	PaddingBottom int    `json:"padding_bottom"`
	PageStyle     string `json:"page_style,omitempty"`
}

// TemplatePreviewResponse parámetros de render completos de una plantilla:
// variante → tema → decoraciones, resueltos en secuencia.
type TemplatePreviewResponse struct {
	TemplateID  string        `json:"template_id"`
	Name        string        `json:"name,omitempty"`
	IsPremium   bool          `json:"is_premium"`
	Variant     string        `json:"variant"`
	Theme       ThemeDTO      `json:"theme"`
	Decorations DecorationDTO `json:"decorations"`
}
