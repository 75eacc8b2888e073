package dataset

import "math"

const (
	minOrders = 20
	maxOrders = 80
)

// GenerateOrders emits between 20 and 80 orders for every month, site and category.
func GenerateOrders(s *Sampler, months []string) []Order {
	var records []Order

	for _, m := range months {
		for _, site := range Sites {
			for _, cat := range Categories {
				n := s.IntRange(minOrders, maxOrders)

				for i := 0; i < n; i++ {
					brand := Choice(s, cat.Brands)
					cycle := math.Max(5, s.Gauss(14, 4))
					lead := math.Max(10, s.Gauss(18, 5))
					fulfilled := s.Chance(0.92)
					onTime := fulfilled && s.Chance(0.88)
					perfect := onTime && s.Chance(0.94)
					backorder := !fulfilled && s.Chance(0.4)
					cpo := Clamp(s.Gauss(1100, 250), 500, 2500)
					toc := cpo * s.Uniform(0.95, 1.15)
					c2c := Clamp(s.Gauss(45, 10), 20, 90)
					visibility := Clamp(s.Gauss(0.82, 0.08), 0.4, 0.98)

					records = append(records, Order{
						Month:            m,
						Site:             site.Code,
						SiteName:         site.Name,
						Category:         cat.Name,
						Brand:            brand,
						OrderFulfilled:   fulfilled,
						OnTime:           onTime,
						PerfectOrder:     perfect,
						CycleTimeDays:    Round(cycle, 1),
						SupplierLeadTime: Round(lead, 1),
						CostPerOrder:     Round(cpo, 2),
						TotalOrderCost:   Round(toc, 2),
						CashToCashCycle:  Round(c2c, 1),
						VisibilityScore:  Round(visibility, 3),
						Backorder:        backorder,
					})
				}
			}
		}
	}

	return records
}
