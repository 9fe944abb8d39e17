package structure

import (
	"fmt"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// State is the phase of a generate call.
type State int

const (
	StateIdle State = iota
	StatePlanning
	StatePlacingSupport
	StatePlacingAttached
	StatePlacingComposite
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlanning:
		return "planning"
	case StatePlacingSupport:
		return "placing-support"
	case StatePlacingAttached:
		return "placing-attached"
	case StatePlacingComposite:
		return "placing-composite"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is what happened to one template cell.
type Outcome int

const (
	Placed Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Record reports the outcome for one block write the plan asked for.
type Record struct {
	Template string   `json:"template"`
	Pos      host.Pos `json:"pos"`
	ID       int      `json:"id"`
	Meta     int      `json:"meta"`
	Pass     Pass     `json:"pass"`
	Outcome  Outcome  `json:"outcome"`
	Reason   string   `json:"reason,omitempty"`
}

// DiagnosticKind classifies a non-fatal problem.
type DiagnosticKind int

const (
	// PlacementWarning covers cells that could not be placed: out of the
	// world, missing support, unknown sentinel, incomplete door, or refused
	// by the host.
	PlacementWarning DiagnosticKind = iota
	// HookFailure is a custom hook handler that returned an error or panicked.
	HookFailure
	// HostError is a host call that panicked.
	HostError
	// UnknownKind is an id missing from the kind registry; it was placed unrotated.
	UnknownKind
)

func (k DiagnosticKind) String() string {
	switch k {
	case PlacementWarning:
		return "placement-warning"
	case HookFailure:
		return "hook-failure"
	case HostError:
		return "host-error"
	case UnknownKind:
		return "unknown-kind"
	}
	return fmt.Sprintf("diagnostic(%d)", int(k))
}

func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic is one warning collected during a generate call.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	Template string         `json:"template"`
	Pos      host.Pos       `json:"pos"`
	Cell     Cell           `json:"cell"`
	Reason   string         `json:"reason"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: template %q at %s cell %s: %s", d.Kind, d.Template, d.Pos, d.Cell, d.Reason)
}

// Result summarises one generate call.
type Result struct {
	Structure   string        `json:"structure"`
	Facing      orient.Facing `json:"facing"`
	Mirror      orient.Mirror `json:"mirror"`
	State       State         `json:"state"`
	Bounds      Box           `json:"bounds"`
	Records     []Record      `json:"records"`
	Diagnostics []Diagnostic  `json:"diagnostics"`
}

// Count returns the number of records with outcome o.
func (r *Result) Count(o Outcome) int {
	n := 0
	for _, rec := range r.Records {
		if rec.Outcome == o {
			n++
		}
	}
	return n
}

// DiagnosticsOf returns the diagnostics of kind k.
func (r *Result) DiagnosticsOf(k DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

// RecordAt returns the last record written at p.
func (r *Result) RecordAt(p host.Pos) (Record, bool) {
	for i := len(r.Records) - 1; i >= 0; i-- {
		if r.Records[i].Pos == p {
			return r.Records[i], true
		}
	}
	return Record{}, false
}
