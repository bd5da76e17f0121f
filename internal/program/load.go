package program

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Load error codes.
const (
	ErrCodeNotFound      = "E001"
	ErrCodeUnsupported   = "E002"
	ErrCodeParseFailed   = "E003"
	ErrCodeMissingField  = "E004"
	ErrCodeInvalidSyntax = "E005"
)

// LoadError describes why a program file could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFile reads a program from a .yaml, .yml or .cue file.
// The program is parsed but not validated; see Validate.
func LoadFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("program file not found: %s", path), Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("failed to read program file: %v", err), Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err := ParseYAML(data)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: err.Error(), Err: err}
		}
		return p, nil
	case ".cue":
		return ParseCUE(path, data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported program extension %q (want .yaml, .yml or .cue)", filepath.Ext(path)),
		}
	}
}

// ParseCUE compiles a CUE document and decodes its "program" field.
// filename is used for error positions only.
func ParseCUE(filename string, data []byte) (*Program, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(ErrCodeInvalidSyntax, err)
	}

	pv := v.LookupPath(cue.ParsePath("program"))
	if !pv.Exists() {
		return nil, &LoadError{
			Code:    ErrCodeMissingField,
			Message: "CUE document has no top-level program field",
			Pos:     v.Pos(),
		}
	}

	if err := pv.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeParseFailed, err)
	}

	var p Program
	if err := pv.Decode(&p); err != nil {
		return nil, cueLoadError(ErrCodeParseFailed, err)
	}
	return &p, nil
}

// cueLoadError keeps the first CUE error and its position.
func cueLoadError(code string, err error) *LoadError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error(), Err: err}
	}
	first := errs[0]
	le := &LoadError{Code: code, Message: first.Error(), Err: err}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
