// Package template resuelve descriptores de plantilla del catálogo a
// parámetros de render: skin visual (Variant), tema con defaults completos
// (Theme) y chrome decorativo por variante (Bundle). Todas las funciones son
// puras y totales: entrada faltante o malformada degrada a un default
// documentado, nunca a un error — la capa de presentación siempre debe poder
// renderizar algo.
package template

import "github.com/ledgerly/ledgerly-api/internal/domain/entity"

// Variant skin visual de una plantilla. Enumeración cerrada.
type Variant string

const (
	VariantClassic     Variant = "classic"
	VariantPanel       Variant = "panel"
	VariantStripe      Variant = "stripe"
	VariantAngled      Variant = "angled"
	VariantBrutal      Variant = "brutal"
	VariantHolographic Variant = "holographic"
	VariantTerminal    Variant = "terminal"
	VariantWave        Variant = "wave"
)

// variantByTemplateID tabla estática id → variante para el catálogo conocido.
// Un id nuevo sin entrada cae al fallback de ResolveVariant; eso es diseño
// deliberado para que el catálogo pueda crecer sin tocar este módulo.
var variantByTemplateID = map[string]Variant{
	"classic":         VariantClassic,
	"corporate":       VariantClassic,
	"minimal":         VariantClassic,
	"cleanSlate":      VariantClassic,
	"executive":       VariantPanel,
	"sidebarPanel":    VariantPanel,
	"professional":    VariantPanel,
	"pinstripe":       VariantStripe,
	"ledgerLines":     VariantStripe,
	"accountant":      VariantStripe,
	"angledEdge":      VariantAngled,
	"geometric":       VariantAngled,
	"origami":         VariantAngled,
	"neoBrutalist":    VariantBrutal,
	"boldStatement":   VariantBrutal,
	"holograph":       VariantHolographic,
	"gradientFlow":    VariantHolographic,
	"terminalReceipt": VariantTerminal,
	"blueprint":       VariantTerminal,
	"retroWave":       VariantWave,
	"creativeStudio":  VariantWave,
}

// ResolveVariant resuelve el id de plantilla a su variante visual.
// Orden: (1) tabla estática; (2) plantilla premium sin entrada → wave;
// (3) resto → classic. Función total: siempre devuelve un miembro válido
// de la enumeración.
func ResolveVariant(templateID string, tpl *entity.Template) Variant {
	if v, ok := variantByTemplateID[templateID]; ok {
		return v
	}
	if tpl != nil && tpl.IsPremium {
		return VariantWave
	}
	return VariantClassic
}

// KnownTemplateIDs devuelve los ids con entrada explícita en la tabla.
// Útil para exponer el catálogo soportado sin duplicar la tabla.
func KnownTemplateIDs() []string {
	ids := make([]string, 0, len(variantByTemplateID))
	for id := range variantByTemplateID {
		ids = append(ids, id)
	}
	return ids
}
