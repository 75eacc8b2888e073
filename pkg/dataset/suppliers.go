package dataset

// Sub-score weights of the overall supplier performance score.
const (
	weightOnTime      = 0.3
	weightQuality     = 0.4
	weightResponsive  = 0.15
	weightFlexibility = 0.15
)

// GenerateSupplierPerformance emits one scorecard per supplier per month.
// The four sub-scores share a base level so they move together.
func GenerateSupplierPerformance(s *Sampler, months []string) []SupplierPerformance {
	categories := CategoryNames()
	records := make([]SupplierPerformance, 0, len(months)*len(Suppliers))

	for _, m := range months {
		for _, sup := range Suppliers {
			region := Choice(s, Regions)
			supplierCat := Choice(s, SupplierCategories)
			portfolioCat := Choice(s, categories)

			base := s.Uniform(0.8, 0.95)
			onTime := Clamp(base+s.Uniform(-0.05, 0.05), 0.6, 0.99)
			quality := Clamp(base+s.Uniform(-0.03, 0.03), 0.7, 0.995)
			responsive := Clamp(base+s.Uniform(-0.08, 0.08), 0.5, 0.99)
			flexibility := Clamp(base+s.Uniform(-0.1, 0.1), 0.5, 0.99)
			overall := (onTime*weightOnTime + quality*weightQuality +
				responsive*weightResponsive + flexibility*weightFlexibility) * 100

			records = append(records, SupplierPerformance{
				Month:                   m,
				SupplierID:              sup.ID,
				SupplierName:            sup.Name,
				Region:                  region,
				SupplierCategory:        supplierCat,
				Category:                portfolioCat,
				OnTimeDeliveryPct:       Round(onTime*100, 2),
				QualityScorePct:         Round(quality*100, 2),
				ResponsivenessPct:       Round(responsive*100, 2),
				FlexibilityPct:          Round(flexibility*100, 2),
				OverallPerformanceScore: Round(overall, 2),
			})
		}
	}

	return records
}
