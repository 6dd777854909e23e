package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/template"
)

func TestBuildDecorations_PaddingsPorVariante(t *testing.T) {
	cases := map[template.Variant][2]int{
		template.VariantClassic:     {40, 40},
		template.VariantPanel:       {110, 70},
		template.VariantStripe:      {64, 56},
		template.VariantAngled:      {90, 64},
		template.VariantBrutal:      {70, 60},
		template.VariantHolographic: {88, 72},
		template.VariantTerminal:    {60, 50},
		template.VariantWave:        {95, 70},
	}
	th := template.ResolveTheme(entity.Template{})
	for v, want := range cases {
		b := template.BuildDecorations(v, th)
		assert.Equal(t, want[0], b.PaddingTop, "padding top de %s", v)
		assert.Equal(t, want[1], b.PaddingBottom, "padding bottom de %s", v)
	}
}

// TestBuildDecorations_VarianteDesconocida cae a la rama wave, no falla.
func TestBuildDecorations_VarianteDesconocida(t *testing.T) {
	th := template.ResolveTheme(entity.Template{})
	got := template.BuildDecorations(template.Variant("vaporwave2"), th)
	wave := template.BuildDecorations(template.VariantWave, th)
	assert.Equal(t, wave, got)
}

// TestBuildDecorations_ColoresDelTema el markup incorpora los colores
// resueltos del tema.
func TestBuildDecorations_ColoresDelTema(t *testing.T) {
	th := template.ResolveTheme(entity.Template{
		Colors: entity.TemplateColors{
			Primary:   []int{255, 0, 0},
			Secondary: []int{0, 255, 0},
		},
	})
	b := template.BuildDecorations(template.VariantPanel, th)
	assert.Contains(t, b.HeaderMarkup, "#FF0000")
	assert.Contains(t, b.FooterMarkup, "#00FF00")
}

// TestBuildDecorations_Determinista misma (variante, tema) produce salida
// byte a byte idéntica en llamadas repetidas.
func TestBuildDecorations_Determinista(t *testing.T) {
	th := template.ResolveTheme(entity.Template{ID: "holograph"})
	for _, v := range []template.Variant{
		template.VariantClassic, template.VariantBrutal,
		template.VariantHolographic, template.VariantWave,
	} {
		first := template.BuildDecorations(v, th)
		second := template.BuildDecorations(v, th)
		assert.Equal(t, first, second, "variante %s", v)
	}
}

// TestBuildDecorations_RoundTripNeoBrutalist escenario completo:
// id "neoBrutalist" → variante brutal → paddings 70/60 y markup no vacío.
func TestBuildDecorations_RoundTripNeoBrutalist(t *testing.T) {
	tpl := entity.Template{ID: "neoBrutalist", Name: "Neo Brutalist", IsPremium: true}

	v := template.ResolveVariant(tpl.ID, &tpl)
	require.Equal(t, template.VariantBrutal, v)

	th := template.ResolveTheme(tpl)
	b := template.BuildDecorations(v, th)

	assert.Equal(t, 70, b.PaddingTop)
	assert.Equal(t, 60, b.PaddingBottom)
	assert.NotEmpty(t, b.HeaderMarkup)
	assert.NotEmpty(t, b.FooterMarkup)
	assert.NotEmpty(t, b.PageStyle)

	again := template.BuildDecorations(template.ResolveVariant(tpl.ID, &tpl), template.ResolveTheme(tpl))
	assert.Equal(t, b, again)
}

// TestBuildDecorations_MarkupBienFormado las bandas son markup posicionado
// con un svg interno.
func TestBuildDecorations_MarkupBienFormado(t *testing.T) {
	th := template.ResolveTheme(entity.Template{})
	b := template.BuildDecorations(template.VariantWave, th)

	assert.Contains(t, b.HeaderMarkup, "position:absolute")
	assert.Contains(t, b.HeaderMarkup, "top:0")
	assert.Contains(t, b.HeaderMarkup, "<svg")
	assert.Contains(t, b.FooterMarkup, "bottom:0")
}
