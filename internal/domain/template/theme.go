package template

import (
	"fmt"
	"strings"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
)

// Colores por defecto (hex CSS) cuando el descriptor no trae la tripleta RGB
// completa de un campo.
const (
	DefaultPrimary   = "#4F46E5"
	DefaultSecondary = "#6366F1"
	DefaultAccent    = "#F9FAFB"
	DefaultText      = "#111827"
	DefaultBorder    = "#E5E7EB"

	mutedLight = "#6B7280" // gris para fondo claro
	mutedDark  = "#9CA3AF" // gris legible en dark mode

	defaultWatermark = "LEDGERLY"
	defaultFontStack = "'Helvetica Neue', Helvetica, Arial, sans-serif"
)

// fontStackByKey tabla estática clave de fuente → font stack CSS.
// Lookup insensible a mayúsculas; clave desconocida cae al stack sans default.
var fontStackByKey = map[string]string{
	"inter":        "'Inter', 'Segoe UI', sans-serif",
	"roboto":       "'Roboto', 'Helvetica Neue', sans-serif",
	"helvetica":    "'Helvetica Neue', Helvetica, Arial, sans-serif",
	"georgia":      "Georgia, 'Times New Roman', serif",
	"playfair":     "'Playfair Display', Georgia, serif",
	"merriweather": "'Merriweather', Georgia, serif",
	"mono":         "'JetBrains Mono', 'Courier New', monospace",
	"courier":      "'Courier New', Courier, monospace",
}

// Theme proyección renderer-ready de un descriptor: colores CSS resueltos,
// font stacks, flags de chrome y el fondo de cabecera ya calculado. Se
// recalcula en cada llamada; nunca se cachea ni se muta.
type Theme struct {
	Primary   string
	Secondary string
	Accent    string
	Text      string
	Border    string

	HeaderBackground string // color plano o expresión linear-gradient
	MutedText        string

	BodyFont  string
	TitleFont string

	ShowHeaderBorder     bool
	ShowFooter           bool
	ShowWatermark        bool
	HasBackgroundPattern bool
	DarkMode             bool
	WatermarkText        string
}

// ResolveTheme resuelve un descriptor a su tema completo. Total y sin efectos:
// cada campo ausente tiene un default documentado, nunca falla.
func ResolveTheme(tpl entity.Template) Theme {
	th := Theme{
		Primary:   rgbToHex(tpl.Colors.Primary, DefaultPrimary),
		Secondary: rgbToHex(tpl.Colors.Secondary, DefaultSecondary),
		Accent:    rgbToHex(tpl.Colors.Accent, DefaultAccent),
		Text:      rgbToHex(tpl.Colors.Text, DefaultText),
		Border:    rgbToHex(tpl.Colors.Border, DefaultBorder),

		BodyFont:  resolveFont(tpl.Fonts.Body),
		TitleFont: resolveFont(tpl.Fonts.Title),

		ShowHeaderBorder:     boolOr(tpl.Layout.ShowHeaderBorder, true),
		ShowFooter:           boolOr(tpl.Layout.ShowFooter, true),
		ShowWatermark:        tpl.Layout.ShowWatermark,
		HasBackgroundPattern: tpl.Layout.HasBackgroundPattern,
		DarkMode:             tpl.Layout.HasDarkMode,
	}

	if tpl.Layout.HasGradientEffects {
		th.HeaderBackground = fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", th.Primary, th.Secondary)
	} else {
		th.HeaderBackground = th.Primary
	}

	if tpl.Layout.HasDarkMode {
		th.MutedText = mutedDark
	} else {
		th.MutedText = mutedLight
	}

	// marca de agua: texto explícito → nombre de plantilla en mayúsculas → marca
	switch {
	case tpl.Layout.WatermarkText != "":
		th.WatermarkText = tpl.Layout.WatermarkText
	case tpl.Name != "":
		th.WatermarkText = strings.ToUpper(tpl.Name)
	default:
		th.WatermarkText = defaultWatermark
	}

	return th
}

// rgbToHex convierte una tripleta RGB a "#RRGGBB". Tripleta nil o con menos
// de 3 componentes se trata como ausente y devuelve el default del campo.
// Componentes fuera de 0–255 se recortan al rango.
func rgbToHex(rgb []int, def string) string {
	if len(rgb) < 3 {
		return def
	}
	return fmt.Sprintf("#%02X%02X%02X", clampByte(rgb[0]), clampByte(rgb[1]), clampByte(rgb[2]))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// resolveFont clave de fuente → stack CSS, insensible a mayúsculas.
func resolveFont(key string) string {
	if stack, ok := fontStackByKey[strings.ToLower(strings.TrimSpace(key))]; ok {
		return stack
	}
	return defaultFontStack
}

// boolOr default para flags tri-estado: nil = no especificado por el catálogo.
func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
