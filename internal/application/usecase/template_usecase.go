package usecase

import (
	"context"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/repository"
	"github.com/ledgerly/ledgerly-api/internal/domain/template"
)

// TemplateUseCase resuelve los parámetros de render de una plantilla en la
// secuencia variante → tema → decoraciones.
type TemplateUseCase struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(templateRepo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{templateRepo: templateRepo}
}

// Preview resuelve los parámetros de render de la plantilla pedida.
// Un id fuera del catálogo no es error: los resolvers son totales y degradan
// a defaults (variante por fallback, tema completo por defaults de campo).
func (uc *TemplateUseCase) Preview(_ context.Context, templateID string) (*dto.TemplatePreviewResponse, error) {
	tpl, err := uc.templateRepo.GetByID(templateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		tpl = &entity.Template{ID: templateID}
	}

	variant := template.ResolveVariant(templateID, tpl)
	theme := template.ResolveTheme(*tpl)
	deco := template.BuildDecorations(variant, theme)

	return &dto.TemplatePreviewResponse{
		TemplateID:  templateID,
		Name:        tpl.Name,
		IsPremium:   tpl.IsPremium,
		Variant:     string(variant),
		Theme:       toThemeDTO(theme),
		Decorations: toDecorationDTO(deco),
	}, nil
}

// List resuelve la previsualización de todo el catálogo (pantalla de
// selección de plantilla).
func (uc *TemplateUseCase) List(ctx context.Context) ([]dto.TemplatePreviewResponse, error) {
	tpls, err := uc.templateRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplatePreviewResponse, 0, len(tpls))
	for _, tpl := range tpls {
		p, err := uc.Preview(ctx, tpl.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func toThemeDTO(th template.Theme) dto.ThemeDTO {
	return dto.ThemeDTO{
		Primary:          th.Primary,
		Secondary:        th.Secondary,
		Accent:           th.Accent,
		Text:             th.Text,
		Border:           th.Border,
		HeaderBackground: th.HeaderBackground,
		MutedText:        th.MutedText,
		BodyFont:         th.BodyFont,
		TitleFont:        th.TitleFont,
		ShowHeaderBorder: th.ShowHeaderBorder,
		ShowFooter:       th.ShowFooter,
		ShowWatermark:    th.ShowWatermark,
		HasPattern:       th.HasBackgroundPattern,
		DarkMode:         th.DarkMode,
		WatermarkText:    th.WatermarkText,
	}
}

func toDecorationDTO(b template.Bundle) dto.DecorationDTO {
	return dto.DecorationDTO{
		HeaderMarkup:  b.HeaderMarkup,
		FooterMarkup:  b.FooterMarkup,
		PaddingTop:    b.PaddingTop,
		PaddingBottom: b.PaddingBottom,
		PageStyle:     b.PageStyle,
	}
}
