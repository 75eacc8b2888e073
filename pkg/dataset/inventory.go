package dataset

import "math"

const (
	minInventoryItems = 20
	maxInventoryItems = 60
)

// GenerateInventory emits stock positions. About 12% of items are blocked;
// blocked stock is smaller and closer to expiry than released stock.
func GenerateInventory(s *Sampler, months []string) []InventoryItem {
	var records []InventoryItem

	for _, m := range months {
		for _, site := range Sites {
			for _, cat := range Categories {
				n := s.IntRange(minInventoryItems, maxInventoryItems)

				for i := 0; i < n; i++ {
					var (
						status string
						qty    int
					)
					if s.Chance(0.12) {
						status = InventoryBlocked
						qty = max(10, int(s.Gauss(200, 100)))
					} else {
						status = InventoryReleased
						qty = max(50, int(s.Gauss(800, 300)))
					}

					unitCost := Round(Clamp(s.Gauss(12, 4), 3, 40), 2)

					var expiry float64
					if status == InventoryBlocked {
						expiry = Clamp(s.Gauss(30, 15), 1, 90)
					} else {
						expiry = Clamp(s.Gauss(120, 60), 30, 360)
					}

					records = append(records, InventoryItem{
						Month:          m,
						Site:           site.Code,
						SiteName:       site.Name,
						Category:       cat.Name,
						Status:         status,
						Qty:            qty,
						UnitCost:       unitCost,
						InventoryValue: Round(float64(qty)*unitCost, 2),
						DaysToExpiry:   int(math.Trunc(expiry)),
					})
				}
			}
		}
	}

	return records
}

// GenerateTurnover emits exactly one turnover snapshot per month, site and category.
func GenerateTurnover(s *Sampler, months []string) []Turnover {
	records := make([]Turnover, 0, len(months)*len(Sites)*len(Categories))

	for _, m := range months {
		for _, site := range Sites {
			for _, cat := range Categories {
				ratio := Clamp(s.Gauss(6.2, 1.8), 2, 12)
				accuracy := Clamp(s.Gauss(0.955, 0.03), 0.85, 0.995)

				records = append(records, Turnover{
					Month:             m,
					Site:              site.Code,
					SiteName:          site.Name,
					Category:          cat.Name,
					TurnoverRatio:     Round(ratio, 2),
					InventoryAccuracy: Round(accuracy, 3),
				})
			}
		}
	}

	return records
}
