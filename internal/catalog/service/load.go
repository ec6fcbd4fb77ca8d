package service

import (
	"bikematch-service/internal/catalog/identity"
	"bikematch-service/internal/catalog/model"
)

// Loaders turn fileio map rows into typed records. Key fields are trimmed
// here; everything else is carried verbatim and coerced at join time.

func ModelsFromMaps(rows []map[string]string) []model.ModelRecord {
	out := make([]model.ModelRecord, 0, len(rows))
	for _, rec := range rows {
		out = append(out, model.ModelRecord{
			ModelID:            identity.Norm(rec["model_id"]),
			Brand:              rec["brand"],
			ModelName:          rec["model_name"],
			ModelYear:          rec["model_year"],
			Category:           rec["category"],
			UseCases:           rec["use_cases"],
			Surfaces:           rec["surfaces"],
			FrameStyles:        rec["frame_styles"],
			MotorBrand:         rec["motor_brand"],
			MotorSystem:        rec["motor_system"],
			MotorTorqueNm:      rec["motor_torque_nm"],
			BatteryDefaultWh:   rec["battery_default_wh"],
			BatteryRemovable:   rec["battery_removable"],
			EquippedLights:     rec["equipped_lights"],
			EquippedMudguards:  rec["equipped_mudguards"],
			EquippedRearRack:   rec["equipped_rear_rack"],
			EquippedKickstand:  rec["equipped_kickstand"],
			EquippedChainguard: rec["equipped_chainguard"],
			WeightKg:           rec["weight_kg"],
			Notes:              rec["notes"],
		})
	}
	return out
}

func SkusFromMaps(rows []map[string]string) []model.SkuRecord {
	out := make([]model.SkuRecord, 0, len(rows))
	for _, rec := range rows {
		_, hasMPN := rec["mpn"]
		_, hasGTIN := rec["gtin"]
		out = append(out, model.SkuRecord{
			SkuID:          identity.Norm(rec["sku_id"]),
			ModelID:        identity.Norm(rec["model_id"]),
			FrameSizeLabel: rec["frame_size_label"],
			Colour:         rec["colour"],
			FrameStyle:     rec["frame_style"],
			BatteryWh:      rec["battery_wh"],
			MPN:            rec["mpn"],
			GTIN:           rec["gtin"],
			HasMPN:         hasMPN,
			HasGTIN:        hasGTIN,
		})
	}
	return out
}

func RetailerFromMaps(rows []map[string]string) []model.RetailerRecord {
	out := make([]model.RetailerRecord, 0, len(rows))
	for _, rec := range rows {
		_, hasMPN := rec["mpn"]
		_, hasGTIN := rec["gtin"]
		out = append(out, model.RetailerRecord{
			SkuID:        identity.Norm(rec["sku_id"]),
			InStock:      rec["in_stock"],
			PriceRrpGbp:  rec["price_rrp_gbp"],
			PriceSaleGbp: rec["price_sale_gbp"],
			ProductURL:   rec["product_url"],
			ImageURL:     rec["image_url"],
			MPN:          rec["mpn"],
			GTIN:         rec["gtin"],
			HasMPN:       hasMPN,
			HasGTIN:      hasGTIN,
		})
	}
	return out
}
