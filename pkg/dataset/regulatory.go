package dataset

const (
	approvalCountries = 6
	submissionBrands  = 10
)

var countryFactor = map[string]float64{
	"US": 1.02,
	"GB": 1.01,
	"DE": 0.99,
}

var (
	submissionStatuses = []string{SubmissionPending, SubmissionApproved}
	submissionWeights  = []float64{0.35, 0.65}
)

// GenerateApprovals emits one approval percentage for every month, site, brand
// and country among the first six countries.
func GenerateApprovals(s *Sampler, months []string) []Approval {
	countries := Countries[:approvalCountries]
	records := make([]Approval, 0, len(months)*len(Sites)*len(Brands)*len(countries))

	for _, m := range months {
		for _, site := range Sites {
			for _, brand := range Brands {
				for _, country := range countries {
					factor, ok := countryFactor[country]
					if !ok {
						factor = 1.0
					}
					pct := Clamp(s.Uniform(85, 98)*factor, 70, 100)

					records = append(records, Approval{
						Month:    m,
						Country:  country,
						Brand:    brand,
						Category: CategoryOf(brand),
						Site:     site.Code,
						SiteName: site.Name,
						Pct:      Round(pct, 1),
					})
				}
			}
		}
	}

	return records
}

// GenerateSubmissions emits a submission for each month, site and one of the
// first ten brands with probability 0.8.
func GenerateSubmissions(s *Sampler, months []string) []Submission {
	var records []Submission

	for _, m := range months {
		for _, site := range Sites {
			for _, brand := range Brands[:submissionBrands] {
				if !s.Chance(0.8) {
					continue
				}
				tta := Clamp(s.Gauss(28, 10), 7, 90)
				status := WeightedChoice(s, submissionStatuses, submissionWeights)

				records = append(records, Submission{
					Month:    m,
					Site:     site.Code,
					SiteName: site.Name,
					Brand:    brand,
					Category: CategoryOf(brand),
					TTA:      Round(tta, 1),
					Status:   status,
				})
			}
		}
	}

	return records
}
