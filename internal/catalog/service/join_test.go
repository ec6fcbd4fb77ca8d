package service_test

import (
	"strings"
	"testing"

	"bikematch-service/internal/catalog/model"
	"bikematch-service/internal/catalog/service"
)

func acmeVolt() model.ModelRecord {
	return model.ModelRecord{
		ModelID:          "M1",
		Brand:            "Acme",
		ModelName:        "Volt",
		UseCases:         "commuting,leisure",
		Surfaces:         "road,light gravel",
		BatteryDefaultWh: "625",
	}
}

func sku(id, modelID, size, colour string) model.SkuRecord {
	return model.SkuRecord{SkuID: id, ModelID: modelID, FrameSizeLabel: size, Colour: colour}
}

func inStock(id, rrp, sale string) model.RetailerRecord {
	return model.RetailerRecord{SkuID: id, InStock: "TRUE", PriceRrpGbp: rrp, PriceSaleGbp: sale}
}

func TestBuildCatalog_JoinAndIdentity(t *testing.T) {
	models := []model.ModelRecord{acmeVolt()}
	skus := []model.SkuRecord{sku("S1", "M1", "M", "Blue")}
	retail := []model.RetailerRecord{inStock("S1", "£2,199.00", "£1,999.00")}

	items := service.BuildCatalog(models, skus, retail)
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	e := items[0]
	// no gtin, no mpn: content-hash identity over "acme|volt|m|blue"
	if e.SkuID != "csid_5f0e3bad" {
		t.Errorf("csid = %q", e.SkuID)
	}
	if e.RetailerJoinID != "S1" {
		t.Errorf("join id = %q", e.RetailerJoinID)
	}
	if e.PriceSaleGbp == nil || *e.PriceSaleGbp != 1999 {
		t.Errorf("sale price = %v", e.PriceSaleGbp)
	}
	if e.PriceRrpGbp == nil || *e.PriceRrpGbp != 2199 {
		t.Errorf("rrp = %v", e.PriceRrpGbp)
	}
	if !e.InStock {
		t.Error("emitted entries are in stock by construction")
	}
	if e.BatteryWh == nil || *e.BatteryWh != 625 {
		t.Errorf("battery should fall back to model default, got %v", e.BatteryWh)
	}
	if e.ModelID != "M1" {
		t.Errorf("model back-reference = %q", e.ModelID)
	}
}

func TestBuildCatalog_OutOfStockDropped(t *testing.T) {
	models := []model.ModelRecord{acmeVolt()}
	skus := []model.SkuRecord{sku("S1", "M1", "M", "Blue")}
	retail := []model.RetailerRecord{{SkuID: "S1", InStock: "false", PriceRrpGbp: "2199"}}

	if items := service.BuildCatalog(models, skus, retail); len(items) != 0 {
		t.Fatalf("out-of-stock variant must be excluded, got %d entries", len(items))
	}
}

func TestBuildCatalog_UnjoinableDropped(t *testing.T) {
	models := []model.ModelRecord{acmeVolt()}
	skus := []model.SkuRecord{
		sku("", "M1", "M", "Blue"),       // no sku id
		sku("S2", "", "M", "Blue"),       // no model id
		sku("S3", "MISSING", "M", "Red"), // model not in index
		sku("S4", "M1", "L", "Red"),      // retailer row missing
		sku("S5", "M1", "S", "Red"),      // the only joinable one
	}
	retail := []model.RetailerRecord{inStock("S5", "2199", "")}

	items := service.BuildCatalog(models, skus, retail)
	if len(items) != 1 || items[0].RetailerJoinID != "S5" {
		t.Fatalf("expected only S5 to survive, got %+v", items)
	}
}

func TestBuildCatalog_DuplicateCSIDFirstSeenWins(t *testing.T) {
	models := []model.ModelRecord{acmeVolt()}
	// same model/size/colour from two retailer listings: identical hash CSID
	skus := []model.SkuRecord{
		sku("S1", "M1", "M", "Blue"),
		sku("S2", "M1", "M", "BLUE"),
	}
	retail := []model.RetailerRecord{inStock("S1", "2100", ""), inStock("S2", "1900", "")}

	items := service.BuildCatalog(models, skus, retail)
	if len(items) != 1 {
		t.Fatalf("expected dedup to one entry, got %d", len(items))
	}
	if items[0].RetailerJoinID != "S1" {
		t.Errorf("first-seen must win, got %q", items[0].RetailerJoinID)
	}

	seen := map[string]bool{}
	for _, e := range items {
		if seen[e.SkuID] {
			t.Errorf("duplicate CSID emitted: %s", e.SkuID)
		}
		seen[e.SkuID] = true
	}
}

func TestBuildCatalog_MPNPreferredFromSkuSheet(t *testing.T) {
	models := []model.ModelRecord{acmeVolt()}
	s := sku("S1", "M1", "M", "Blue")
	s.MPN, s.HasMPN = "SKU-MPN", true
	r := inStock("S1", "2199", "")
	r.MPN, r.HasMPN = "RETAIL-MPN", true

	items := service.BuildCatalog(models, []model.SkuRecord{s}, []model.RetailerRecord{r})
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].MPN != "SKU-MPN" {
		t.Errorf("sku sheet column must win, got %q", items[0].MPN)
	}
	if items[0].SkuID != "acme|SKU-MPN|m|blue" {
		t.Errorf("csid = %q", items[0].SkuID)
	}
}

func TestBuildCatalog_SkuBatteryOverride(t *testing.T) {
	models := []model.ModelRecord{acmeVolt()}
	s := sku("S1", "M1", "M", "Blue")
	s.BatteryWh = "500Wh"
	items := service.BuildCatalog(models, []model.SkuRecord{s}, []model.RetailerRecord{inStock("S1", "2199", "")})
	if len(items) != 1 || items[0].BatteryWh == nil || *items[0].BatteryWh != 500 {
		t.Fatalf("sku override must beat model default: %+v", items)
	}
}

func TestBuildCatalog_AbsentNumericsOmitted(t *testing.T) {
	m := acmeVolt()
	m.BatteryDefaultWh = ""
	m.MotorTorqueNm = "n/a"
	items := service.BuildCatalog(
		[]model.ModelRecord{m},
		[]model.SkuRecord{sku("S1", "M1", "M", "Blue")},
		[]model.RetailerRecord{{SkuID: "S1", InStock: "true"}},
	)
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	e := items[0]
	if e.BatteryWh != nil || e.MotorTorqueNm != nil || e.PriceRrpGbp != nil || e.PriceSaleGbp != nil {
		t.Errorf("absent numerics must stay absent, not default to zero: %+v", e)
	}
}

func TestBuildCatalog_StableSort(t *testing.T) {
	models := []model.ModelRecord{
		{ModelID: "M1", Brand: "zenith", ModelName: "Alpha"},
		{ModelID: "M2", Brand: "Acme", ModelName: "Volt"},
		{ModelID: "M3", Brand: "acme", ModelName: "Bolt"},
	}
	skus := []model.SkuRecord{
		sku("S1", "M1", "M", "Red"),
		sku("S2", "M2", "M", "Blue"),
		sku("S3", "M2", "L", "Blue"),
		sku("S4", "M3", "M", "Green"),
	}
	retail := []model.RetailerRecord{
		inStock("S1", "1000", ""),
		inStock("S2", "3000", "2500"),
		inStock("S3", "2000", ""),
		inStock("S4", "1500", ""),
	}

	items := service.BuildCatalog(models, skus, retail)
	if len(items) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]
		ab, bb := strings.ToLower(a.Brand), strings.ToLower(b.Brand)
		if ab > bb {
			t.Fatalf("brand order violated at %d: %q > %q", i, a.Brand, b.Brand)
		}
		if ab == bb {
			am, bm := strings.ToLower(a.ModelName), strings.ToLower(b.ModelName)
			if am > bm {
				t.Fatalf("model order violated at %d: %q > %q", i, a.ModelName, b.ModelName)
			}
			if am == bm && a.EffectivePrice() > b.EffectivePrice() {
				t.Fatalf("price order violated at %d", i)
			}
		}
	}
	// Bolt (acme) before Volt (Acme); within Volt, S3 (2000) before S2 (2500 sale)
	if items[0].ModelName != "Bolt" || items[1].RetailerJoinID != "S3" || items[2].RetailerJoinID != "S2" {
		t.Errorf("unexpected order: %s %s %s", items[0].RetailerJoinID, items[1].RetailerJoinID, items[2].RetailerJoinID)
	}
}

func TestBuildCatalog_Idempotent(t *testing.T) {
	models := []model.ModelRecord{acmeVolt()}
	skus := []model.SkuRecord{sku("S1", "M1", "M", "Blue"), sku("S2", "M1", "L", "Blue")}
	retail := []model.RetailerRecord{inStock("S1", "2000", ""), inStock("S2", "2100", "")}

	a := service.BuildCatalog(models, skus, retail)
	b := service.BuildCatalog(models, skus, retail)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].SkuID != b[i].SkuID {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].SkuID, b[i].SkuID)
		}
	}
}

func TestBuildCatalog_DuplicateIndexKeysLastWriteWins(t *testing.T) {
	// two model rows with the same id: the later row is the one joined
	m1 := acmeVolt()
	m2 := acmeVolt()
	m2.ModelName = "Volt v2"
	items := service.BuildCatalog(
		[]model.ModelRecord{m1, m2},
		[]model.SkuRecord{sku("S1", "M1", "M", "Blue")},
		[]model.RetailerRecord{inStock("S1", "2000", "")},
	)
	if len(items) != 1 || items[0].ModelName != "Volt v2" {
		t.Fatalf("expected last model row to win, got %+v", items)
	}
}

func TestLoaders_TrimKeysAndTrackOptionalColumns(t *testing.T) {
	skus := service.SkusFromMaps([]map[string]string{
		{"sku_id": " S1 ", "model_id": "M1", "frame_size_label": "M", "colour": "Blue", "mpn": ""},
	})
	if len(skus) != 1 {
		t.Fatalf("expected 1 sku, got %d", len(skus))
	}
	if skus[0].SkuID != "S1" || skus[0].ModelID != "M1" {
		t.Errorf("keys must be trimmed: %+v", skus[0])
	}
	if !skus[0].HasMPN {
		t.Error("mpn column present (though empty) must be tracked")
	}
	if skus[0].HasGTIN {
		t.Error("gtin column absent must be tracked")
	}

	// a sku sheet with an empty mpn column suppresses the retailer's mpn
	models := []model.ModelRecord{acmeVolt()}
	r := inStock("S1", "2000", "")
	r.MPN, r.HasMPN = "RETAIL-MPN", true
	items := service.BuildCatalog(models, skus, []model.RetailerRecord{r})
	if len(items) != 1 || items[0].MPN != "" {
		t.Fatalf("empty sku mpn column must win over retailer value: %+v", items)
	}
}
