package dataset

const (
	minBatches    = 15
	maxBatches    = 50
	minLabTests   = 10
	maxLabTests   = 30
	minDeviations = 2
	maxDeviations = 15
)

var (
	severities      = []string{SeverityCritical, SeverityMajor, SeverityMinor}
	severityWeights = []float64{0.15, 0.35, 0.5}
	rootCauses      = []string{"Equipment", "Process", "Material", "Human Error", "Environment", "Documentation"}
)

// GenerateBatches emits QA release batches; roughly 6% fail.
func GenerateBatches(s *Sampler, months []string) []Batch {
	var records []Batch

	for _, m := range months {
		for _, site := range Sites {
			for _, cat := range Categories {
				n := s.IntRange(minBatches, maxBatches)

				for i := 0; i < n; i++ {
					qaDays := Clamp(s.Gauss(5.5, 1.5), 2, 12)
					status := BatchFail
					if s.Chance(0.94) {
						status = BatchPass
					}

					records = append(records, Batch{
						Month:    m,
						Site:     site.Code,
						SiteName: site.Name,
						Category: cat.Name,
						QADays:   Round(qaDays, 1),
						Status:   status,
					})
				}
			}
		}
	}

	return records
}

// GenerateLabTests emits lab test turnaround times in days.
func GenerateLabTests(s *Sampler, months []string) []LabTest {
	var records []LabTest

	for _, m := range months {
		for _, site := range Sites {
			for _, cat := range Categories {
				n := s.IntRange(minLabTests, maxLabTests)

				for i := 0; i < n; i++ {
					tat := Clamp(s.Gauss(4.5, 1.2), 1, 10)
					records = append(records, LabTest{
						Month:    m,
						Site:     site.Code,
						SiteName: site.Name,
						Category: cat.Name,
						TAT:      Round(tat, 1),
					})
				}
			}
		}
	}

	return records
}

// GenerateDeviations emits quality deviations with weighted severities.
func GenerateDeviations(s *Sampler, months []string) []Deviation {
	var records []Deviation

	for _, m := range months {
		for _, site := range Sites {
			for _, cat := range Categories {
				n := s.IntRange(minDeviations, maxDeviations)

				for i := 0; i < n; i++ {
					severity := WeightedChoice(s, severities, severityWeights)
					cause := Choice(s, rootCauses)

					records = append(records, Deviation{
						Month:         m,
						Site:          site.Code,
						SiteName:      site.Name,
						Category:      cat.Name,
						Severity:      severity,
						RootCause:     cause,
						DaysToResolve: s.IntRange(1, 30),
					})
				}
			}
		}
	}

	return records
}
