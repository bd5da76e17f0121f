package program

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/primer/internal/aggregate"
	"github.com/roach88/primer/internal/speaker"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Index  int    `json:"index"`
	Action string `json:"action"`
	Line   string `json:"line"`
	Total  *int   `json:"total,omitempty"`
}

// Result is the outcome of a program run.
type Result struct {
	Name  string       `json:"name"`
	Steps []StepResult `json:"steps"`
}

// Lines returns the output lines in step order.
func (r *Result) Lines() []string {
	lines := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		lines[i] = s.Line
	}
	return lines
}

// WriteTo writes each line followed by a newline.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range r.Lines() {
		m, err := io.WriteString(w, line+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// String joins the lines with newlines.
func (r *Result) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Runner executes programs.
type Runner struct {
	alloc  aggregate.Allocator
	logger *slog.Logger
}

// NewRunner creates a runner. A nil allocator defaults to a HeapAllocator
// and a nil logger discards output.
func NewRunner(alloc aggregate.Allocator, logger *slog.Logger) *Runner {
	if alloc == nil {
		alloc = &aggregate.HeapAllocator{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{alloc: alloc, logger: logger}
}

// Run validates p and executes its steps in order. The context is checked
// between steps; a cancelled run returns the context error and no result.
func (r *Runner) Run(ctx context.Context, p *Program) (*Result, error) {
	if errs := Validate(p); len(errs) > 0 {
		return nil, fmt.Errorf("invalid program: %w", errs[0])
	}

	result := &Result{Name: p.Name, Steps: make([]StepResult, 0, len(p.Steps))}
	var speakers speaker.Registry

	r.logger.Info("program starting", "name", p.Name, "steps", len(p.Steps))
	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sr := StepResult{Index: i, Action: step.Action()}
		switch sr.Action {
		case ActionSum:
			total := aggregate.Sum(step.Sum.Values)
			sr.Total = &total
			sr.Line = sumLine(step.Sum.Label, total)

		case ActionBuffer:
			var values [aggregate.BufferLen]int
			copy(values[:], step.Buffer.Values)
			total, err := aggregate.SumFixedBuffer(r.alloc, values)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			sr.Total = &total
			sr.Line = sumLine(step.Buffer.Label, total)

		case ActionSpeak:
			kind, err := speaker.ParseKind(step.Speak.Kind)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			s, err := speakers.Create(kind, step.Speak.Name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			sr.Line = s.Line()
		}

		r.logger.Debug("step done", "index", i, "action", sr.Action, "line", sr.Line)
		result.Steps = append(result.Steps, sr)
	}
	r.logger.Info("program finished", "name", p.Name, "speakers", speakers.Len())

	return result, nil
}

func sumLine(label string, total int) string {
	return fmt.Sprintf("The sum of the elements in the %s is: %d", label, total)
}
