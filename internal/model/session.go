package model

import "time"

// Session is a persisted scan session. Files and BatchSize never change after
// creation so that batch numbering stays stable across client polls.
type Session struct {
	ID           string    `json:"id"`
	Files        []Path    `json:"files"`
	BatchSize    int       `json:"batch_size"`
	Exclusions   []string  `json:"exclude_patterns"`
	CreatedAt    time.Time `json:"created_at"`
	TotalFiles   int       `json:"total_files"`
	TotalBatches int       `json:"total_batches"`
}

// TotalBatchesFor returns ceil(files/batchSize); zero when batchSize < 1.
func TotalBatchesFor(files, batchSize int) int {
	if batchSize < 1 || files <= 0 {
		return 0
	}

	return (files + batchSize - 1) / batchSize
}

// BatchSlice is one window of a session's file list.
//
// Message is set only when the lookup failed (unknown session or batch number
// out of range); Files is empty in that case.
type BatchSlice struct {
	Files        []Path `json:"files"`
	BatchNumber  int    `json:"batch_number"`
	TotalBatches int    `json:"total_batches"`
	IsLastBatch  bool   `json:"is_last_batch"`
	Message      string `json:"message,omitempty"`
}

// Found reports whether the slice carries files to scan.
func (b BatchSlice) Found() bool {
	return b.Message == "" && len(b.Files) > 0
}
