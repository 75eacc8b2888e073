package dataset

import "fmt"

// Site is a manufacturing site that records are attributed to.
type Site struct {
	Code string
	Name string
}

// Category is a product portfolio category with its brands, in display order.
type Category struct {
	Name   string
	Brands []string
}

// Supplier is an entry of the procurement supplier lookup.
type Supplier struct {
	ID   string `json:"supplier_id"`
	Name string `json:"supplier_name"`
}

// Iteration order of every table below is part of the output contract:
// generators walk them in order, so reordering changes the seeded output.
var Sites = []Site{
	{Code: "PK-JAM", Name: "Pakistan — Jamshoro"},
	{Code: "SK-LEV", Name: "Slovakia — Levice"},
	{Code: "IN-MUM", Name: "India — Mumbai"},
	{Code: "US-MEM", Name: "USA — Memphis"},
	{Code: "ES-MAD", Name: "Spain — Madrid"},
	{Code: "UK-MAI", Name: "UK — Maidenhead"},
}

var Categories = []Category{
	{Name: "Oral Health", Brands: []string{"Sensodyne", "Parodontax", "Polident"}},
	{Name: "Pain Relief", Brands: []string{"Panadol", "Advil", "Voltaren"}},
	{Name: "Vitamins & Supplements", Brands: []string{"Centrum", "Caltrate", "Emergen-C"}},
	{Name: "Respiratory Health", Brands: []string{"Otrivin", "Theraflu", "Nicotinell"}},
	{Name: "Digestive & Other", Brands: []string{"ENO", "Tums", "Benefiber"}},
}

var Countries = []string{"US", "GB", "PK", "IN", "SK", "ES", "DE", "PL", "IT", "FR"}

var SupplierCategories = []string{"API", "Excipient", "Packaging", "Logistics"}

var Regions = []string{"EMEA", "AMER", "APAC"}

var supplierNames = []string{
	"ChemCore Ltd",
	"PackRight SA",
	"BioMedica PLC",
	"RapidLogix",
	"GlobalPharm Co",
	"UniPack Group",
	"PureAPI Inc",
	"FlexiSupply",
}

// Suppliers is the static supplier lookup, IDs numbered from SUP-001.
var Suppliers = buildSuppliers(supplierNames)

// Brands lists every brand, category by category.
var Brands = buildBrands(Categories)

var brandCategory = buildBrandCategory(Categories)

func buildSuppliers(names []string) []Supplier {
	out := make([]Supplier, len(names))
	for i, n := range names {
		out[i] = Supplier{ID: fmt.Sprintf("SUP-%03d", i+1), Name: n}
	}
	return out
}

func buildBrands(cats []Category) []string {
	var out []string
	for _, c := range cats {
		out = append(out, c.Brands...)
	}
	return out
}

func buildBrandCategory(cats []Category) map[string]string {
	out := make(map[string]string)
	for _, c := range cats {
		for _, b := range c.Brands {
			out[b] = c.Name
		}
	}
	return out
}

// CategoryOf returns the category a brand belongs to, or "" for unknown brands.
func CategoryOf(brand string) string {
	return brandCategory[brand]
}

// CategoryNames returns category names in table order.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}
