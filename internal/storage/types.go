package storage

import (
	"github.com/OCharnyshevich/structure-generator/pkg/structure"
)

// WorldData holds the block overrides of a world for persistence.
type WorldData struct {
	Overrides []BlockOverride `json:"overrides"`
}

// BlockOverride is a single block override for JSON serialization.
type BlockOverride struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Z    int `json:"z"`
	ID   int `json:"id"`
	Meta int `json:"meta"`
}

// Report is the persisted summary of one generate call.
type Report struct {
	Anchor  [3]int `json:"anchor"`
	Placed  int    `json:"placed"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`

	*structure.Result
}

// NewReport summarises res generated at anchor.
func NewReport(res *structure.Result, ax, ay, az int) *Report {
	return &Report{
		Anchor:  [3]int{ax, ay, az},
		Placed:  res.Count(structure.Placed),
		Skipped: res.Count(structure.Skipped),
		Failed:  res.Count(structure.Failed),
		Result:  res,
	}
}
