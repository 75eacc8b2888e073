package dataset

import "errors"

var (
	ErrInvalidMonthCount = errors.New("month count must be positive")
	ErrInvalidMonth      = errors.New("invalid month, want YYYY-MM")
	ErrUnknownDataset    = errors.New("unknown dataset")
)
