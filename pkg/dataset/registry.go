package dataset

import (
	"fmt"
	"strings"
)

// Generator produces one record collection from the shared sampler
type Generator interface {
	// Name is the dataset identifier used on the command line and in summaries
	Name() string

	// Path is the output location relative to the output root
	Path() string

	// Description returns a human-readable description of the records
	Description() string

	// MinPerCombination is the guaranteed number of records per
	// (month, site, category), or 0 if the generator does not iterate that product
	MinPerCombination() int

	// Generate draws the records for the given months
	Generate(s *Sampler, months []string) []any
}

// Dataset is a generated record collection ready for serialization
type Dataset struct {
	Name    string
	Path    string
	Records []any
}

// SuppliersLookupPath is where the static supplier table is written as one JSON document
const SuppliersLookupPath = "procurement/suppliers.json"

type typedGenerator[T any] struct {
	name        string
	path        string
	description string
	minimum     int
	fn          func(*Sampler, []string) []T
}

func (g *typedGenerator[T]) Name() string           { return g.name }
func (g *typedGenerator[T]) Path() string           { return g.path }
func (g *typedGenerator[T]) Description() string    { return g.description }
func (g *typedGenerator[T]) MinPerCombination() int { return g.minimum }

func (g *typedGenerator[T]) Generate(s *Sampler, months []string) []any {
	records := g.fn(s, months)
	out := make([]any, len(records))
	for i := range records {
		out[i] = records[i]
	}
	return out
}

// Registry lists generators in the order they consume the sampler.
// The order is fixed: changing it changes every dataset after the moved entry.
var Registry = []Generator{
	&typedGenerator[Order]{"orders", "supply/orders.jsonl", "Orders with fulfilment, timing and cost metrics", minOrders, GenerateOrders},
	&typedGenerator[Batch]{"batches", "quality/batches.jsonl", "QA batch release with pass/fail status", minBatches, GenerateBatches},
	&typedGenerator[LabTest]{"labs", "quality/labs.jsonl", "Lab test turnaround times", minLabTests, GenerateLabTests},
	&typedGenerator[InventoryItem]{"inventory", "supply/inventory.jsonl", "Inventory positions with value and expiry", minInventoryItems, GenerateInventory},
	&typedGenerator[Turnover]{"turnover", "supply/inventory_turnover.jsonl", "Inventory turnover ratio and accuracy", 1, GenerateTurnover},
	&typedGenerator[Approval]{"approvals", "regulatory/approvals.jsonl", "Regulatory approval percentage by country and brand", 0, GenerateApprovals},
	&typedGenerator[Submission]{"submissions", "regulatory/submissions.jsonl", "Regulatory submissions with time to approval", 0, GenerateSubmissions},
	&typedGenerator[SupplierPerformance]{"supplier_perf", "supply/supplier_performance.jsonl", "Monthly supplier scorecards", 0, GenerateSupplierPerformance},
	&typedGenerator[Deviation]{"deviations", "quality/deviations.jsonl", "Quality deviations by severity and root cause", minDeviations, GenerateDeviations},
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	for _, g := range Registry {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %s (known: %s)", ErrUnknownDataset, name, strings.Join(Names(), ", "))
}

// Names returns all generator names in generation order
func Names() []string {
	names := make([]string, len(Registry))
	for i, g := range Registry {
		names[i] = g.Name()
	}
	return names
}

// GenerateAll runs every registered generator in order against one sampler.
func GenerateAll(s *Sampler, months []string) []Dataset {
	out := make([]Dataset, len(Registry))
	for i, g := range Registry {
		out[i] = Dataset{Name: g.Name(), Path: g.Path(), Records: g.Generate(s, months)}
	}
	return out
}
