package dataset

// Field order in each struct is the order fields appear in the serialized record.

// Order is one purchase order with its fulfilment flags, timing and cost.
type Order struct {
	Month            string  `json:"month"`
	Site             string  `json:"site"`
	SiteName         string  `json:"site_name"`
	Category         string  `json:"category"`
	Brand            string  `json:"brand"`
	OrderFulfilled   bool    `json:"order_fulfilled"`
	OnTime           bool    `json:"on_time"`
	PerfectOrder     bool    `json:"perfect_order"`
	CycleTimeDays    float64 `json:"cycle_time_days"`
	SupplierLeadTime float64 `json:"supplier_lead_time"`
	CostPerOrder     float64 `json:"cost_per_order"`
	TotalOrderCost   float64 `json:"total_order_cost"`
	CashToCashCycle  float64 `json:"cash_to_cash_cycle"`
	VisibilityScore  float64 `json:"visibility_score"`
	Backorder        bool    `json:"backorder"`
}

// Batch is a QA batch release decision.
type Batch struct {
	Month    string  `json:"month"`
	Site     string  `json:"site"`
	SiteName string  `json:"site_name"`
	Category string  `json:"category"`
	QADays   float64 `json:"qa_days"`
	Status   string  `json:"status"`
}

// LabTest is one lab test with its turnaround time in days.
type LabTest struct {
	Month    string  `json:"month"`
	Site     string  `json:"site"`
	SiteName string  `json:"site_name"`
	Category string  `json:"category"`
	TAT      float64 `json:"tat"`
}

// InventoryItem is a stock position; InventoryValue is Qty times the rounded UnitCost.
type InventoryItem struct {
	Month          string  `json:"month"`
	Site           string  `json:"site"`
	SiteName       string  `json:"site_name"`
	Category       string  `json:"category"`
	Status         string  `json:"status"`
	Qty            int     `json:"qty"`
	UnitCost       float64 `json:"unit_cost"`
	InventoryValue float64 `json:"inventory_value"`
	DaysToExpiry   int     `json:"days_to_expiry"`
}

// Turnover is the monthly inventory turnover snapshot of a site and category.
type Turnover struct {
	Month             string  `json:"month"`
	Site              string  `json:"site"`
	SiteName          string  `json:"site_name"`
	Category          string  `json:"category"`
	TurnoverRatio     float64 `json:"turnover_ratio"`
	InventoryAccuracy float64 `json:"inventory_accuracy"`
}

// Approval is the approval percentage of a brand in one country.
type Approval struct {
	Month    string  `json:"month"`
	Country  string  `json:"country"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Site     string  `json:"site"`
	SiteName string  `json:"site_name"`
	Pct      float64 `json:"pct"`
}

// Submission is a regulatory submission with its time to approval (TTA) in days.
type Submission struct {
	Month    string  `json:"month"`
	Site     string  `json:"site"`
	SiteName string  `json:"site_name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	TTA      float64 `json:"tta"`
	Status   string  `json:"status"`
}

// SupplierPerformance is a monthly supplier scorecard. OverallPerformanceScore
// is the weighted sum of the four percentage sub-scores.
type SupplierPerformance struct {
	Month                   string  `json:"month"`
	SupplierID              string  `json:"supplier_id"`
	SupplierName            string  `json:"supplier_name"`
	Region                  string  `json:"region"`
	SupplierCategory        string  `json:"supplier_category"`
	Category                string  `json:"category"`
	OnTimeDeliveryPct       float64 `json:"on_time_delivery_pct"`
	QualityScorePct         float64 `json:"quality_score_pct"`
	ResponsivenessPct       float64 `json:"responsiveness_pct"`
	FlexibilityPct          float64 `json:"flexibility_pct"`
	OverallPerformanceScore float64 `json:"overall_performance_score"`
}

// Deviation is a quality deviation with severity, root cause and resolution time.
type Deviation struct {
	Month         string `json:"month"`
	Site          string `json:"site"`
	SiteName      string `json:"site_name"`
	Category      string `json:"category"`
	Severity      string `json:"severity"`
	RootCause     string `json:"root_cause"`
	DaysToResolve int    `json:"days_to_resolve"`
}

// Status and label values.
const (
	BatchPass = "Pass"
	BatchFail = "Fail"

	InventoryBlocked  = "Blocked"
	InventoryReleased = "Released"

	SubmissionPending  = "Pending"
	SubmissionApproved = "Approved"

	SeverityCritical = "Critical"
	SeverityMajor    = "Major"
	SeverityMinor    = "Minor"
)
