package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación read-only de TemplateRepository. El catálogo se
// carga por seed/migración; la API nunca lo escribe.
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

// colors, fonts y layout se guardan como JSONB: son documentos del catálogo,
// no columnas relacionales, y así ShowHeaderBorder/ShowFooter conservan su
// tri-estado (ausente vs false explícito) al deserializar en *bool.
const templateCols = `id, name, is_premium, colors, fonts, layout`

type templateColorsDoc struct {
	Primary   []int `json:"primary"`
	Secondary []int `json:"secondary"`
	Accent    []int `json:"accent"`
	Text      []int `json:"text"`
	Border    []int `json:"border"`
}

type templateFontsDoc struct {
	Body  string `json:"body"`
	Title string `json:"title"`
}

type templateLayoutDoc struct {
	HasGradientEffects   bool   `json:"has_gradient_effects"`
	HasDarkMode          bool   `json:"has_dark_mode"`
	ShowWatermark        bool   `json:"show_watermark"`
	ShowHeaderBorder     *bool  `json:"show_header_border"`
	ShowFooter           *bool  `json:"show_footer"`
	HasBackgroundPattern bool   `json:"has_background_pattern"`
	WatermarkText        string `json:"watermark_text"`
}

func scanTemplate(row pgx.Row) (*entity.Template, error) {
	var (
		t          entity.Template
		colorsJSON []byte
		fontsJSON  []byte
		layoutJSON []byte
	)
	if err := row.Scan(&t.ID, &t.Name, &t.IsPremium, &colorsJSON, &fontsJSON, &layoutJSON); err != nil {
		return nil, err
	}

	var colors templateColorsDoc
	if len(colorsJSON) > 0 {
		if err := json.Unmarshal(colorsJSON, &colors); err != nil {
			return nil, fmt.Errorf("decode template colors: %w", err)
		}
	}
	t.Colors = entity.TemplateColors{
		Primary:   colors.Primary,
		Secondary: colors.Secondary,
		Accent:    colors.Accent,
		Text:      colors.Text,
		Border:    colors.Border,
	}

	var fonts templateFontsDoc
	if len(fontsJSON) > 0 {
		if err := json.Unmarshal(fontsJSON, &fonts); err != nil {
			return nil, fmt.Errorf("decode template fonts: %w", err)
		}
	}
	t.Fonts = entity.TemplateFonts{Body: fonts.Body, Title: fonts.Title}

	var layout templateLayoutDoc
	if len(layoutJSON) > 0 {
		if err := json.Unmarshal(layoutJSON, &layout); err != nil {
			return nil, fmt.Errorf("decode template layout: %w", err)
		}
	}
	t.Layout = entity.TemplateLayout{
		HasGradientEffects:   layout.HasGradientEffects,
		HasDarkMode:          layout.HasDarkMode,
		ShowWatermark:        layout.ShowWatermark,
		ShowHeaderBorder:     layout.ShowHeaderBorder,
		ShowFooter:           layout.ShowFooter,
		HasBackgroundPattern: layout.HasBackgroundPattern,
		WatermarkText:        layout.WatermarkText,
	}
	return &t, nil
}

// GetByID obtiene un descriptor de plantilla por ID.
func (r *TemplateRepo) GetByID(id string) (*entity.Template, error) {
	query := `SELECT ` + templateCols + ` FROM templates WHERE id = $1`
	t, err := scanTemplate(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

// List devuelve el catálogo completo en orden estable por ID.
func (r *TemplateRepo) List() ([]*entity.Template, error) {
	query := `SELECT ` + templateCols + ` FROM templates ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
