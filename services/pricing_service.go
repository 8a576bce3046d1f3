package services

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Pricing tables live in DATA_DIR as JSON so the workshop can retune labour
// and lead times without a deploy.

type LabourCharges struct {
	Manufacture float64 `json:"manufacture"`
	Assembly    float64 `json:"assembly"`
	Finishing   float64 `json:"finishing"`
}

type ShippingCharges struct {
	BaseCost    float64 `json:"baseCost"`
	PerUnitCost float64 `json:"perUnitCost"`
}

type AmountDetails struct {
	Currency                string          `json:"currency"`
	MinimumProductionAmount float64         `json:"minimumProductionAmount"`
	LabourCharges           LabourCharges   `json:"labourCharges"`
	PackagingCostPerUnit    float64         `json:"packagingCostPerUnit"`
	Shipping                ShippingCharges `json:"shipping"`
	TaxPercent              float64         `json:"tax"`
}

type TimeDetails struct {
	Production struct {
		StandardTimeDays int `json:"standard_time_days"`
	} `json:"production"`
	RawMaterials struct {
		StandardOrderingDays int `json:"standard_ordering_days"`
	} `json:"raw_materials"`
	QualityControl struct {
		StandardQcDays int `json:"standard_qc_days"`
	} `json:"quality_control"`
	BacklogDelay struct {
		BacklogDays int `json:"backlog_days"`
	} `json:"backlog_delay"`
}

var (
	amountDetails AmountDetails
	timeDetails   TimeDetails
	stonePrices   map[string]float64
)

// LoadPricing reads amount-details.json, time-details.json and
// stone-price.json from dir. Missing files fall back to built-in defaults.
func LoadPricing(dir string) {
	amountDetails = AmountDetails{
		Currency:                "INR",
		MinimumProductionAmount: 5000,
		LabourCharges:           LabourCharges{Manufacture: 600, Assembly: 250, Finishing: 350},
		PackagingCostPerUnit:    150,
		Shipping:                ShippingCharges{BaseCost: 200, PerUnitCost: 50},
		TaxPercent:              18,
	}
	timeDetails.Production.StandardTimeDays = 7
	timeDetails.RawMaterials.StandardOrderingDays = 5
	timeDetails.QualityControl.StandardQcDays = 2
	timeDetails.BacklogDelay.BacklogDays = 4
	stonePrices = map[string]float64{
		"obsidian": 12, "marble": 6, "gold": 5400, "silver": 80,
		"titanium": 30, "ruby": 900, "sapphire": 850, "onyx": 9,
		"pearl": 120, "ebony": 4,
	}

	loadJSON(filepath.Join(dir, "amount-details.json"), &amountDetails)
	loadJSON(filepath.Join(dir, "time-details.json"), &timeDetails)
	loadJSON(filepath.Join(dir, "stone-price.json"), &stonePrices)
}

func loadJSON(path string, out interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Pricing table %s not found, using defaults", path)
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Failed to parse %s: %v", path, err)
	}
}

// StonePricePerGram returns the per-gram rate for a raw material, 0 when the
// stone is not on the price list.
func StonePricePerGram(name string) float64 {
	return stonePrices[strings.ToLower(name)]
}

type Payable struct {
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalWithTax float64 `json:"total_with_tax"`
}

// CalculatePayable prices an order: unit cost plus labour, packaging and
// shipping per item, taxed at taxPercent (nil uses the configured rate).
func CalculatePayable(unitCost float64, quantity int, taxPercent *float64) Payable {
	labour := amountDetails.LabourCharges.Manufacture +
		amountDetails.LabourCharges.Assembly +
		amountDetails.LabourCharges.Finishing
	shipping := amountDetails.Shipping.BaseCost + amountDetails.Shipping.PerUnitCost

	perItem := unitCost + labour + amountDetails.PackagingCostPerUnit + shipping

	if quantity <= 0 {
		quantity = 1
	}
	subtotal := perItem * float64(quantity)

	rate := amountDetails.TaxPercent
	if taxPercent != nil && *taxPercent >= 0 {
		rate = *taxPercent
	}
	taxAmount := subtotal * rate / 100

	return Payable{
		Subtotal:     subtotal,
		TaxAmount:    taxAmount,
		TotalWithTax: subtotal + taxAmount,
	}
}

type AmountSummary struct {
	Currency                string  `json:"currency"`
	MinimumProductionAmount float64 `json:"minimumProductionAmount"`
	LabourTotal             float64 `json:"labourTotal"`
	PackagingCostPerUnit    float64 `json:"packagingCostPerUnit"`
	ShippingTotal           float64 `json:"shippingTotal"`
	TaxPercent              float64 `json:"taxPercent"`
}

// GetAmountSummary exposes the cost division shown on the quote screen.
func GetAmountSummary() AmountSummary {
	return AmountSummary{
		Currency:                amountDetails.Currency,
		MinimumProductionAmount: amountDetails.MinimumProductionAmount,
		LabourTotal: amountDetails.LabourCharges.Manufacture +
			amountDetails.LabourCharges.Assembly +
			amountDetails.LabourCharges.Finishing,
		PackagingCostPerUnit: amountDetails.PackagingCostPerUnit,
		ShippingTotal:        amountDetails.Shipping.BaseCost + amountDetails.Shipping.PerUnitCost,
		TaxPercent:           amountDetails.TaxPercent,
	}
}

// BacklogOrderLimit: above this many in-production orders the schedule gets
// the backlog penalty.
const BacklogOrderLimit = 3

// ManufacturingDays derives the promised lead time. Ordering days are only
// added when raw material has to be purchased first.
func ManufacturingDays(requiresMaterialPurchase bool, inProductionCount int64) int {
	days := timeDetails.Production.StandardTimeDays + timeDetails.QualityControl.StandardQcDays
	if requiresMaterialPurchase {
		days += timeDetails.RawMaterials.StandardOrderingDays
	}
	if inProductionCount > BacklogOrderLimit {
		days += timeDetails.BacklogDelay.BacklogDays
	}
	return days
}
