package domain

// Tier is one area-indexed price breakpoint of a per-area cost factor.
type Tier struct {
	FromAreaM2 float64  `json:"from_area_m2"`
	ToAreaM2   *float64 `json:"to_area_m2"`
	PricePerM2 float64  `json:"price_per_m2"`
	IsAnchor   bool     `json:"is_anchor"`
	MarkupPct  float64  `json:"markup_pct"`
}

// Covers reports whether area lies within [FromAreaM2, ToAreaM2]; a nil upper bound is unbounded.
func (t Tier) Covers(area float64) bool {
	if area < t.FromAreaM2 {
		return false
	}
	return t.ToAreaM2 == nil || area <= *t.ToAreaM2
}

// MarkedUpPrice is the tier price with its own markup applied.
func (t Tier) MarkedUpPrice() float64 {
	return t.PricePerM2 * (1 + t.MarkupPct/100)
}

type PricingMode string

const (
	PricingModePerM2 PricingMode = "per_m2"
	PricingModeFixed PricingMode = "fixed"
)

// Pricing is implemented by PerArea, FixedUnit and FixedQuantity only.
type Pricing interface {
	Mode() PricingMode
	isPricing()
}

type PerArea struct {
	Tiers                []Tier
	InterpolationEnabled bool
}

func (PerArea) Mode() PricingMode { return PricingModePerM2 }
func (PerArea) isPricing()        {}

// FixedUnit is a flat price per produced unit, independent of area.
type FixedUnit struct {
	PricePerUnit float64
}

func (FixedUnit) Mode() PricingMode { return PricingModeFixed }
func (FixedUnit) isPricing()        {}

type QuantityPrice struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// FixedQuantity prices an order by exact quantity lookup plus a one-off initial price.
type FixedQuantity struct {
	InitialPrice float64
	Prices       []QuantityPrice
}

func (FixedQuantity) Mode() PricingMode { return PricingModeFixed }
func (FixedQuantity) isPricing()        {}

// PriceFor returns the price listed for exactly qty and whether one was found.
func (f FixedQuantity) PriceFor(qty int) (float64, bool) {
	for _, p := range f.Prices {
		if p.Quantity == qty {
			return p.Price, true
		}
	}
	return 0, false
}

type Material struct {
	ID          string
	Name        string
	GroupLabel  *string
	Pricing     PerArea
	MarkupPct   float64
	MaxWidthMm  *float64
	MaxHeightMm *float64
	AllowSplit  bool
	SortOrder   int
}

type Finish struct {
	ID         string
	Name       string
	GroupLabel *string
	// PerArea or FixedUnit
	Pricing   Pricing
	MarkupPct float64
	SortOrder int
}

type Product struct {
	ID         string
	Name       string
	GroupLabel *string
	// PerArea or FixedQuantity
	Pricing   Pricing
	MarkupPct float64
	SortOrder int
}

type Config struct {
	RoundingStepKr  float64 `json:"rounding_step_kr" db:"rounding_step_kr"`
	GlobalMarkupPct float64 `json:"global_markup_pct" db:"global_markup_pct"`
}

type PriceRequest struct {
	WidthMm  float64
	HeightMm float64
	Quantity int
	Material *Material
	Finish   *Finish
	Product  *Product
	Config   Config
}

type SplitInfo struct {
	IsSplit     bool `json:"is_split"`
	PiecesWide  int  `json:"pieces_wide"`
	PiecesHigh  int  `json:"pieces_high"`
	TotalPieces int  `json:"total_pieces"`
}

type PriceResult struct {
	TotalPrice         float64    `json:"total_price"`
	TotalAreaM2        float64    `json:"total_area_m2"`
	MaterialPricePerM2 float64    `json:"material_price_per_m2"`
	FinishPricePerM2   float64    `json:"finish_price_per_m2"`
	ProductPricePerM2  float64    `json:"product_price_per_m2"`
	FinishFlatPrice    float64    `json:"finish_flat_price"`
	ProductFlatPrice   float64    `json:"product_flat_price"`
	UnmatchedQuantity  bool       `json:"unmatched_quantity,omitempty"`
	SplitInfo          *SplitInfo `json:"split_info"`
}
