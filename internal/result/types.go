package result

// OrderResult is the metric tuple captured from one polynomial order's
// sweep. Each map is keyed by device, then smoother, holding the values
// exactly as the solver printed them.
type OrderResult struct {
	Order     int                          `json:"order"`
	Unknowns  string                       `json:"unknowns"`
	SetupTime map[string]map[string]string `json:"setup_time"`
	SolveTime map[string]map[string]string `json:"solve_time"`
	IterCount map[string]map[string]string `json:"iter_count"`
}
