package ledger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
)

// FindingKind classifies an audit finding.
type FindingKind string

const (
	FindingLeak           FindingKind = "leak"
	FindingDoubleRelease  FindingKind = "double_release"
	FindingUnknownRelease FindingKind = "unknown_release"
)

// Finding is one lifecycle violation for one buffer.
type Finding struct {
	Kind     FindingKind `json:"kind"`
	BufferID string      `json:"buffer_id"`
	Acquires int         `json:"acquires"`
	Releases int         `json:"releases"`
}

func (f Finding) String() string {
	switch f.Kind {
	case FindingLeak:
		return fmt.Sprintf("memory leak: buffer %s acquired without a matching release", f.BufferID)
	case FindingDoubleRelease:
		return fmt.Sprintf("double free: buffer %s released %d times for %d acquire(s)", f.BufferID, f.Releases, f.Acquires)
	default:
		return fmt.Sprintf("unknown release: buffer %s released before any acquire", f.BufferID)
	}
}

// Report is the result of an audit.
type Report struct {
	Buffers  int       `json:"buffers"`
	Events   int       `json:"events"`
	Findings []Finding `json:"findings"`
}

// Clean reports whether every acquire was matched by exactly one later release.
func (r Report) Clean() bool {
	return len(r.Findings) == 0
}

// Audit replays the ledger and reports lifecycle violations. Findings are
// ordered by the seq of each buffer's first event.
func (l *Ledger) Audit(ctx context.Context) (Report, error) {
	events, err := l.Events(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("audit: %w", err)
	}
	return AuditEvents(events), nil
}

// bufferState tracks one buffer while events are replayed.
type bufferState struct {
	live     bool
	acquired bool
	acquires int
	releases int
	found    []FindingKind
}

func (b *bufferState) flag(kind FindingKind) {
	if !slices.Contains(b.found, kind) {
		b.found = append(b.found, kind)
	}
}

// AuditEvents replays events in seq order, one state machine per buffer:
// a release while not live is a double release (or an unknown release if
// the buffer was never acquired before it), an acquire while live or a
// buffer still live at the end is a leak. Findings are grouped by buffer in
// order of each buffer's first event.
func AuditEvents(events []Event) Report {
	ordered := slices.Clone(events)
	slices.SortStableFunc(ordered, func(a, b Event) int {
		return cmp.Compare(a.Seq, b.Seq)
	})

	var order []string
	states := make(map[string]*bufferState)

	for _, e := range ordered {
		st, ok := states[e.BufferID]
		if !ok {
			st = &bufferState{}
			states[e.BufferID] = st
			order = append(order, e.BufferID)
		}
		switch e.Kind {
		case EventAcquire:
			st.acquires++
			if st.live {
				st.flag(FindingLeak)
			}
			st.live = true
			st.acquired = true
		case EventRelease:
			st.releases++
			switch {
			case st.live:
				st.live = false
			case st.acquired:
				st.flag(FindingDoubleRelease)
			default:
				st.flag(FindingUnknownRelease)
			}
		}
	}

	report := Report{Buffers: len(order), Events: len(events), Findings: []Finding{}}
	for _, id := range order {
		st := states[id]
		if st.live {
			st.flag(FindingLeak)
		}
		for _, kind := range st.found {
			report.Findings = append(report.Findings, Finding{
				Kind:     kind,
				BufferID: id,
				Acquires: st.acquires,
				Releases: st.releases,
			})
		}
	}
	return report
}
