package model

// Counts holds the parsed linter totals.
type Counts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Add returns the element-wise sum of c and other.
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Errors:   c.Errors + other.Errors,
		Warnings: c.Warnings + other.Warnings,
	}
}

// ScanOutput is the outcome of scanning one set of files.
type ScanOutput struct {
	Output   string `json:"output"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	ExitCode int    `json:"exit_code"`
}

// Counts returns the error and warning totals of the output.
func (s ScanOutput) Counts() Counts {
	return Counts{Errors: s.Errors, Warnings: s.Warnings}
}

// BatchResult is the response to a process_batch request. It is derived and
// never stored. Message repeats the lookup failure of an empty slice.
type BatchResult struct {
	BatchNumber  int    `json:"batch_number"`
	TotalBatches int    `json:"total_batches"`
	IsLastBatch  bool   `json:"is_last_batch"`
	Output       string `json:"output"`
	Errors       int    `json:"errors"`
	Warnings     int    `json:"warnings"`
	Message      string `json:"message,omitempty"`
}

// NewBatchResult combines a batch slice with the output of scanning it.
func NewBatchResult(slice BatchSlice, out ScanOutput) BatchResult {
	return BatchResult{
		BatchNumber:  slice.BatchNumber,
		TotalBatches: slice.TotalBatches,
		IsLastBatch:  slice.IsLastBatch,
		Output:       out.Output,
		Errors:       out.Errors,
		Warnings:     out.Warnings,
		Message:      slice.Message,
	}
}

// ProgressInfo is returned when a scan starts. ScanID is empty and Message is
// set when discovery found no files.
type ProgressInfo struct {
	TotalFiles       int    `json:"total_files"`
	EstimatedBatches int    `json:"estimated_batches"`
	ScanID           string `json:"scan_id,omitempty"`
	Message          string `json:"message,omitempty"`
}

// HasFiles reports whether a session was created.
func (p ProgressInfo) HasFiles() bool {
	return p.TotalFiles > 0 && p.ScanID != ""
}

// LegacyBatchReport is one entry of a non-session batch scan.
type LegacyBatchReport struct {
	Batch      int    `json:"batch"`
	FilesCount int    `json:"files_count"`
	Output     string `json:"output"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
}

// LegacyScanReport is the result of scanning a whole target without a session.
type LegacyScanReport struct {
	Batches []LegacyBatchReport `json:"batches,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Totals sums the counts of every batch in the report.
func (r LegacyScanReport) Totals() Counts {
	var total Counts
	for _, b := range r.Batches {
		total = total.Add(Counts{Errors: b.Errors, Warnings: b.Warnings})
	}

	return total
}
