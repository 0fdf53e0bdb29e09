package domain

import "time"

// BuildRecord is the persisted change-detection state of one gated node:
// the fingerprint of the command, environment and declared inputs from
// its last successful run.
type BuildRecord struct {
	TaskID      string    `json:"task_id,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
