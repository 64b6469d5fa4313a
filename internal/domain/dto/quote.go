package dto

import "github.com/printadmin/storformat/internal/domain"

type Config struct {
	RoundingStepKr  float64 `json:"rounding_step_kr" validate:"gte=0"`
	GlobalMarkupPct float64 `json:"global_markup_pct" validate:"gte=-100"`
}

// CalculateRequest carries full catalog definitions and needs no stored data.
type CalculateRequest struct {
	WidthMm  float64   `json:"width_mm"`
	HeightMm float64   `json:"height_mm"`
	Quantity int       `json:"quantity"`
	Material *Material `json:"material"`
	Finish   *Finish   `json:"finish"`
	Product  *Product  `json:"product"`
	Config   *Config   `json:"config"`
}

type QuoteRequest struct {
	MaterialID string  `json:"material_id"`
	FinishID   *string `json:"finish_id"`
	ProductID  *string `json:"product_id"`
	WidthMm    float64 `json:"width_mm"`
	HeightMm   float64 `json:"height_mm"`
	Quantity   int     `json:"quantity"`
}

type Size struct {
	WidthMm  float64 `json:"width_mm" validate:"gt=0"`
	HeightMm float64 `json:"height_mm" validate:"gt=0"`
}

type QuoteTableRequest struct {
	MaterialID string  `json:"material_id" validate:"required"`
	FinishID   *string `json:"finish_id"`
	ProductID  *string `json:"product_id"`
	Sizes      []Size  `json:"sizes" validate:"required,min=1,max=50,dive"`
	Quantities []int   `json:"quantities" validate:"required,min=1,max=20,dive,gte=1"`
}

type QuoteTableCell struct {
	WidthMm  float64             `json:"width_mm"`
	HeightMm float64             `json:"height_mm"`
	Quantity int                 `json:"quantity"`
	Result   *domain.PriceResult `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
}

type QuoteTableResponse struct {
	MaterialID string           `json:"material_id"`
	Cells      []QuoteTableCell `json:"cells"`
}

type AdminLoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}
