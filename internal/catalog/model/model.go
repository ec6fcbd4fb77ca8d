package model

// ModelRecord is one row of the models sheet, keyed by model_id.
// Many SKUs reference one model. Immutable once read.
type ModelRecord struct {
	ModelID            string
	Brand              string
	ModelName          string
	ModelYear          string
	Category           string
	UseCases           string // comma-delimited tags
	Surfaces           string // comma-delimited tags
	FrameStyles        string
	MotorBrand         string
	MotorSystem        string
	MotorTorqueNm      string
	BatteryDefaultWh   string
	BatteryRemovable   string
	EquippedLights     string
	EquippedMudguards  string
	EquippedRearRack   string
	EquippedKickstand  string
	EquippedChainguard string
	WeightKg           string
	Notes              string
}

// SkuRecord is one row of the SKU sheet. A SKU references exactly one model;
// a SKU whose model is absent from the models sheet is unjoinable.
type SkuRecord struct {
	SkuID          string
	ModelID        string
	FrameSizeLabel string
	Colour         string
	FrameStyle     string
	BatteryWh      string // per-SKU override of the model default
	MPN            string
	GTIN           string
	HasMPN         bool // column present in the source sheet
	HasGTIN        bool
}

// RetailerRecord is one row of the retailer stock/price feed, keyed by the
// same sku_id namespace as SkuRecord (the join id).
type RetailerRecord struct {
	SkuID        string
	InStock      string
	PriceRrpGbp  string
	PriceSaleGbp string
	ProductURL   string
	ImageURL     string
	MPN          string
	GTIN         string
	HasMPN       bool
	HasGTIN      bool
}

// CatalogEntry is the joined, deduplicated output unit. Optional fields are
// pointers / omitempty so that "no data" stays distinguishable from zero or
// empty string in the snapshot.
type CatalogEntry struct {
	// IDs
	SkuID          string `json:"sku_id"` // the CSID, portable across retailers
	RetailerJoinID string `json:"retailer_join_id"`
	MPN            string `json:"mpn,omitempty"`
	GTIN           string `json:"gtin,omitempty"`

	// Descriptive
	Brand     string `json:"brand"`
	ModelName string `json:"model_name"`
	ModelYear string `json:"model_year,omitempty"`
	Category  string `json:"category,omitempty"`

	// Fit / usage
	UseCases       string `json:"use_cases,omitempty"`
	Surfaces       string `json:"surfaces,omitempty"`
	FrameStyle     string `json:"frame_style,omitempty"`
	FrameStyles    string `json:"frame_styles,omitempty"`
	FrameSizeLabel string `json:"frame_size_label,omitempty"`
	Colour         string `json:"colour,omitempty"`

	// Motor / battery
	MotorBrand       string   `json:"motor_brand,omitempty"`
	MotorSystem      string   `json:"motor_system,omitempty"`
	MotorTorqueNm    *float64 `json:"motor_torque_nm,omitempty"`
	BatteryWh        *float64 `json:"battery_wh,omitempty"`
	BatteryRemovable string   `json:"battery_removable,omitempty"`

	// Retail
	InStock      bool     `json:"in_stock"`
	PriceRrpGbp  *float64 `json:"price_rrp_gbp,omitempty"`
	PriceSaleGbp *float64 `json:"price_sale_gbp,omitempty"`
	ProductURL   string   `json:"product_url"`
	ImageURL     string   `json:"image_url"`

	// Equipped
	EquippedLights     string `json:"equipped_lights,omitempty"`
	EquippedMudguards  string `json:"equipped_mudguards,omitempty"`
	EquippedRearRack   string `json:"equipped_rear_rack,omitempty"`
	EquippedKickstand  string `json:"equipped_kickstand,omitempty"`
	EquippedChainguard string `json:"equipped_chainguard,omitempty"`

	// Meta
	WeightKg *float64 `json:"weight_kg,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	ModelID  string   `json:"_model_id"`
}

// EffectivePrice is the sale price when present, else RRP, else 0.
// The scoring engine treats the missing case as unbounded instead; see quiz.
func (e CatalogEntry) EffectivePrice() float64 {
	if e.PriceSaleGbp != nil {
		return *e.PriceSaleGbp
	}
	if e.PriceRrpGbp != nil {
		return *e.PriceRrpGbp
	}
	return 0
}

// EquippedFlags returns the five equipment flags in stable order.
func (e CatalogEntry) EquippedFlags() [5]string {
	return [5]string{
		e.EquippedLights,
		e.EquippedMudguards,
		e.EquippedRearRack,
		e.EquippedKickstand,
		e.EquippedChainguard,
	}
}

// Snapshot is the generated catalog document served to the quiz.
type Snapshot struct {
	GeneratedAt string         `json:"generated_at"`
	Items       []CatalogEntry `json:"items"`
}
