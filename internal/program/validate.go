package program

import (
	"fmt"

	"github.com/roach88/primer/internal/aggregate"
	"github.com/roach88/primer/internal/speaker"
)

// Validation error codes (E201-E209)
const (
	ErrNoSteps      = "E201" // at least one step required
	ErrStepAction   = "E202" // step must set exactly one action
	ErrEmptyLabel   = "E203" // sum/buffer label required
	ErrBufferLength = "E204" // buffer needs exactly aggregate.BufferLen values
	ErrUnknownKind  = "E205" // speaker kind not recognized
)

// ValidationError is one problem found in a program.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks p and returns every problem found. An empty result means
// Run will not reject the program.
func Validate(p *Program) []ValidationError {
	var errs []ValidationError

	if len(p.Steps) == 0 {
		errs = append(errs, ValidationError{
			Field:   "steps",
			Message: "at least one step is required",
			Code:    ErrNoSteps,
		})
	}

	for i, step := range p.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch step.Action() {
		case ActionSum:
			errs = append(errs, validateLabel(field+".sum", step.Sum)...)
		case ActionBuffer:
			errs = append(errs, validateLabel(field+".buffer", step.Buffer)...)
			if n := len(step.Buffer.Values); n != aggregate.BufferLen {
				errs = append(errs, ValidationError{
					Field:   field + ".buffer.values",
					Message: fmt.Sprintf("buffer holds exactly %d values, got %d", aggregate.BufferLen, n),
					Code:    ErrBufferLength,
				})
			}
		case ActionSpeak:
			if _, err := speaker.ParseKind(step.Speak.Kind); err != nil {
				errs = append(errs, ValidationError{
					Field:   field + ".speak.kind",
					Message: err.Error(),
					Code:    ErrUnknownKind,
				})
			}
		default:
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "step must set exactly one of sum, buffer, speak",
				Code:    ErrStepAction,
			})
		}
	}

	return errs
}

func validateLabel(field string, s *SumStep) []ValidationError {
	if s.Label != "" {
		return nil
	}
	return []ValidationError{{
		Field:   field + ".label",
		Message: "label is required",
		Code:    ErrEmptyLabel,
	}}
}
