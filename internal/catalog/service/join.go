package service

import (
	"sort"

	"bikematch-service/internal/catalog/identity"
	"bikematch-service/internal/catalog/model"
	"bikematch-service/internal/numeric"
)

// BuildCatalog joins the three source tables into the ordered catalog.
// Malformed or unjoinable rows are dropped, never fatal: a SKU missing its
// model or retailer row, an out-of-stock row, or a duplicate identity all
// just disappear from the output. Only in-stock variants are emitted.
func BuildCatalog(models []model.ModelRecord, skus []model.SkuRecord, retail []model.RetailerRecord) []model.CatalogEntry {
	// index models by model_id and retailer rows by join id;
	// duplicate keys within a source are last-write-wins
	modelsByID := make(map[string]model.ModelRecord, len(models))
	for _, m := range models {
		if m.ModelID != "" {
			modelsByID[m.ModelID] = m
		}
	}
	retailBySkuID := make(map[string]model.RetailerRecord, len(retail))
	for _, r := range retail {
		if r.SkuID != "" {
			retailBySkuID[r.SkuID] = r
		}
	}

	items := make([]model.CatalogEntry, 0, len(skus))
	seenCSID := make(map[string]struct{}, len(skus))

	for _, s := range skus {
		if s.SkuID == "" || s.ModelID == "" {
			continue
		}
		m, ok := modelsByID[s.ModelID]
		if !ok {
			continue
		}
		r, ok := retailBySkuID[s.SkuID]
		if !ok {
			continue
		}
		if identity.NormLower(r.InStock) != "true" {
			continue
		}

		// mpn/gtin: the SKU sheet's own column wins when present,
		// else fall back to the retailer feed's column
		mpn := ""
		switch {
		case s.HasMPN:
			mpn = identity.Norm(s.MPN)
		case r.HasMPN:
			mpn = identity.Norm(r.MPN)
		}
		gtin := ""
		switch {
		case s.HasGTIN:
			gtin = identity.Norm(s.GTIN)
		case r.HasGTIN:
			gtin = identity.Norm(r.GTIN)
		}

		brand := identity.Norm(m.Brand)
		modelName := identity.Norm(m.ModelName)
		size := identity.Norm(s.FrameSizeLabel)
		colour := identity.Norm(s.Colour)

		csid := identity.ResolveCSID(identity.CSIDInput{
			GTIN:      gtin,
			MPN:       mpn,
			Brand:     brand,
			ModelName: modelName,
			Size:      size,
			Colour:    colour,
		})
		if _, dup := seenCSID[csid]; dup {
			continue // first-seen wins
		}
		seenCSID[csid] = struct{}{}

		battery := numeric.ExtractPtr(s.BatteryWh)
		if battery == nil {
			battery = numeric.ExtractPtr(m.BatteryDefaultWh)
		}

		items = append(items, model.CatalogEntry{
			SkuID:          csid,
			RetailerJoinID: s.SkuID,
			MPN:            mpn,
			GTIN:           gtin,

			Brand:     brand,
			ModelName: modelName,
			ModelYear: identity.Norm(m.ModelYear),
			Category:  identity.Norm(m.Category),

			UseCases:       identity.Norm(m.UseCases),
			Surfaces:       identity.Norm(m.Surfaces),
			FrameStyle:     identity.Norm(s.FrameStyle),
			FrameStyles:    identity.Norm(m.FrameStyles),
			FrameSizeLabel: size,
			Colour:         colour,

			MotorBrand:       identity.Norm(m.MotorBrand),
			MotorSystem:      identity.Norm(m.MotorSystem),
			MotorTorqueNm:    numeric.ExtractPtr(m.MotorTorqueNm),
			BatteryWh:        battery,
			BatteryRemovable: identity.Norm(m.BatteryRemovable),

			InStock:      true,
			PriceRrpGbp:  numeric.ExtractPtr(r.PriceRrpGbp),
			PriceSaleGbp: numeric.ExtractPtr(r.PriceSaleGbp),
			ProductURL:   identity.Norm(r.ProductURL),
			ImageURL:     identity.Norm(r.ImageURL),

			EquippedLights:     identity.Norm(m.EquippedLights),
			EquippedMudguards:  identity.Norm(m.EquippedMudguards),
			EquippedRearRack:   identity.Norm(m.EquippedRearRack),
			EquippedKickstand:  identity.Norm(m.EquippedKickstand),
			EquippedChainguard: identity.Norm(m.EquippedChainguard),

			WeightKg: numeric.ExtractPtr(m.WeightKg),
			Notes:    identity.Norm(m.Notes),
			ModelID:  s.ModelID,
		})
	}

	// stable snapshot order, independent of input row order:
	// brand -> model name (case-insensitive) -> effective price ascending
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		ab, bb := identity.NormLower(a.Brand), identity.NormLower(b.Brand)
		if ab != bb {
			return ab < bb
		}
		am, bm := identity.NormLower(a.ModelName), identity.NormLower(b.ModelName)
		if am != bm {
			return am < bm
		}
		return a.EffectivePrice() < b.EffectivePrice()
	})

	return items
}
