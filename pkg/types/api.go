package types

// PrecisionEstimate is one per-precision row of an estimation report.
type PrecisionEstimate struct {
	// Bit-width used for this row.
	// example: 16
	Bits int `json:"bits" example:"16"`
	// Estimated GPU memory in bytes.
	// example: 16800000000
	Bytes float64 `json:"bytes" example:"16800000000"`
	// Human-readable rendering of Bytes (binary GB/MB).
	// example: 15.65 GB
	Human string `json:"human" example:"15.65 GB"`
}

// Report is the result of one estimation query: the structured per-precision
// values plus the rendered text block printed by the CLI.
type Report struct {
	// Subject of the report: a registry model id, or "parameters: <label>"
	// for explicit-count queries.
	// example: mistralai/Mistral-7B-v0.1
	Subject string `json:"subject" example:"mistralai/Mistral-7B-v0.1"`
	// Parameter count the estimates are based on.
	// example: 7000000000
	Parameters int64 `json:"parameters" example:"7000000000"`
	// Compact size label for Parameters.
	// example: 7.0B
	Label string `json:"label" example:"7.0B"`
	// One entry per computed precision, in descending bit-width order.
	Estimates []PrecisionEstimate `json:"estimates"`
	// Rendered report text (single line or header plus bullet lines).
	Text string `json:"text"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid model size format: bad
	Error string `json:"error" example:"invalid model size format: bad"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
