package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/template"
)

func boolPtr(b bool) *bool { return &b }

// TestResolveTheme_SinColores descriptor sin objeto de colores: cada campo
// recibe exactamente su default documentado.
func TestResolveTheme_SinColores(t *testing.T) {
	th := template.ResolveTheme(entity.Template{})

	assert.Equal(t, template.DefaultPrimary, th.Primary)
	assert.Equal(t, template.DefaultSecondary, th.Secondary)
	assert.Equal(t, template.DefaultAccent, th.Accent)
	assert.Equal(t, template.DefaultText, th.Text)
	assert.Equal(t, template.DefaultBorder, th.Border)
	// sin gradiente: fondo de cabecera = primario plano
	assert.Equal(t, th.Primary, th.HeaderBackground)
}

func TestResolveTheme_TripletasRGB(t *testing.T) {
	th := template.ResolveTheme(entity.Template{
		Colors: entity.TemplateColors{
			Primary: []int{255, 0, 128},
			Text:    []int{0, 0, 0},
		},
	})
	assert.Equal(t, "#FF0080", th.Primary)
	assert.Equal(t, "#000000", th.Text)
	// campos no provistos conservan su default
	assert.Equal(t, template.DefaultSecondary, th.Secondary)
}

// TestResolveTheme_TripletaIncompleta menos de 3 componentes = ausente.
func TestResolveTheme_TripletaIncompleta(t *testing.T) {
	th := template.ResolveTheme(entity.Template{
		Colors: entity.TemplateColors{
			Primary: []int{255, 0},
			Accent:  []int{},
		},
	})
	assert.Equal(t, template.DefaultPrimary, th.Primary)
	assert.Equal(t, template.DefaultAccent, th.Accent)
}

// TestResolveTheme_ComponenteFueraDeRango se recorta a 0–255, no falla.
func TestResolveTheme_ComponenteFueraDeRango(t *testing.T) {
	th := template.ResolveTheme(entity.Template{
		Colors: entity.TemplateColors{Primary: []int{300, -5, 128}},
	})
	assert.Equal(t, "#FF0080", th.Primary)
}

func TestResolveTheme_Gradiente(t *testing.T) {
	th := template.ResolveTheme(entity.Template{
		Layout: entity.TemplateLayout{HasGradientEffects: true},
	})
	assert.Equal(t,
		"linear-gradient(135deg, "+template.DefaultPrimary+" 0%, "+template.DefaultSecondary+" 100%)",
		th.HeaderBackground)
}

func TestResolveTheme_DarkMode(t *testing.T) {
	light := template.ResolveTheme(entity.Template{})
	dark := template.ResolveTheme(entity.Template{
		Layout: entity.TemplateLayout{HasDarkMode: true},
	})
	assert.NotEqual(t, light.MutedText, dark.MutedText)
	assert.True(t, dark.DarkMode)
	assert.False(t, light.DarkMode)
}

func TestResolveTheme_Fuentes(t *testing.T) {
	th := template.ResolveTheme(entity.Template{
		Fonts: entity.TemplateFonts{Body: "Inter", Title: "PLAYFAIR"},
	})
	// lookup insensible a mayúsculas
	assert.Contains(t, th.BodyFont, "Inter")
	assert.Contains(t, th.TitleFont, "Playfair")

	unknown := template.ResolveTheme(entity.Template{
		Fonts: entity.TemplateFonts{Body: "comic-sans-9000"},
	})
	assert.Contains(t, unknown.BodyFont, "sans-serif")
}

// TestResolveTheme_FlagsChrome header border y footer por defecto true salvo
// false explícito; watermark y pattern por defecto false salvo true explícito.
func TestResolveTheme_FlagsChrome(t *testing.T) {
	th := template.ResolveTheme(entity.Template{})
	assert.True(t, th.ShowHeaderBorder)
	assert.True(t, th.ShowFooter)
	assert.False(t, th.ShowWatermark)
	assert.False(t, th.HasBackgroundPattern)

	th = template.ResolveTheme(entity.Template{
		Layout: entity.TemplateLayout{
			ShowHeaderBorder:     boolPtr(false),
			ShowFooter:           boolPtr(false),
			ShowWatermark:        true,
			HasBackgroundPattern: true,
		},
	})
	assert.False(t, th.ShowHeaderBorder, "false explícito debe sobrevivir la cadena de defaults")
	assert.False(t, th.ShowFooter)
	assert.True(t, th.ShowWatermark)
	assert.True(t, th.HasBackgroundPattern)
}

// TestResolveTheme_Watermark cadena de fallback: explícito → nombre en
// mayúsculas → marca fija.
func TestResolveTheme_Watermark(t *testing.T) {
	th := template.ResolveTheme(entity.Template{
		Name:   "Retro Wave",
		Layout: entity.TemplateLayout{WatermarkText: "CONFIDENCIAL"},
	})
	assert.Equal(t, "CONFIDENCIAL", th.WatermarkText)

	th = template.ResolveTheme(entity.Template{Name: "Retro Wave"})
	assert.Equal(t, "RETRO WAVE", th.WatermarkText)

	th = template.ResolveTheme(entity.Template{})
	assert.Equal(t, "LEDGERLY", th.WatermarkText)
}

// TestResolveTheme_SinCamposVacios ningún campo del tema queda vacío, venga
// lo que venga en el descriptor.
func TestResolveTheme_SinCamposVacios(t *testing.T) {
	for _, tpl := range []entity.Template{
		{},
		{ID: "x", Name: "X", IsPremium: true},
		{Colors: entity.TemplateColors{Primary: []int{1}}},
	} {
		th := template.ResolveTheme(tpl)
		assert.NotEmpty(t, th.Primary)
		assert.NotEmpty(t, th.Secondary)
		assert.NotEmpty(t, th.Accent)
		assert.NotEmpty(t, th.Text)
		assert.NotEmpty(t, th.Border)
		assert.NotEmpty(t, th.HeaderBackground)
		assert.NotEmpty(t, th.MutedText)
		assert.NotEmpty(t, th.BodyFont)
		assert.NotEmpty(t, th.TitleFont)
		assert.NotEmpty(t, th.WatermarkText)
	}
}
