package profile

// TableStats holds dataset-wide aggregate statistics. The duplicates stage
// merges its metrics in after the initial computation; everything else is
// fixed once computed.
type TableStats struct {
	N               int                `json:"n"`
	NVar            int                `json:"n_var"`
	MemorySize      int64              `json:"memory_size"`
	NCellsMissing   int                `json:"n_cells_missing"`
	PCellsMissing   float64            `json:"p_cells_missing"`
	NVarsWithMissing int               `json:"n_vars_with_missing"`
	NVarsAllMissing int                `json:"n_vars_all_missing"`
	Types           map[ColumnType]int `json:"types"`

	// Merged in by the duplicates stage
	NDuplicates int     `json:"n_duplicates"`
	PDuplicates float64 `json:"p_duplicates"`
}

// MergeDuplicateMetrics folds the duplicate-row metrics into the stats
func (s *TableStats) MergeDuplicateMetrics(nDuplicates int, pDuplicates float64) {
	s.NDuplicates = nDuplicates
	s.PDuplicates = pDuplicates
}

// Values exposes the stats as a metric map for alert payloads
func (s TableStats) Values() map[string]interface{} {
	return map[string]interface{}{
		"n":                   s.N,
		"n_var":               s.NVar,
		"memory_size":         s.MemorySize,
		"n_cells_missing":     s.NCellsMissing,
		"p_cells_missing":     s.PCellsMissing,
		"n_vars_with_missing": s.NVarsWithMissing,
		"n_vars_all_missing":  s.NVarsAllMissing,
		"n_duplicates":        s.NDuplicates,
		"p_duplicates":        s.PDuplicates,
	}
}
