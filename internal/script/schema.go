package script

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSrc string

var (
	schemaOnce sync.Once
	schemaVal  cue.Value
	schemaErr  error
)

// schema compiles the embedded CUE schema once. The schema source is part
// of the binary, so a compile failure is a programming error surfaced on
// first use rather than at init.
func schema() (cue.Value, error) {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		v := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			schemaErr = fmt.Errorf("compile embedded schema: %w", err)
			return
		}
		schemaVal = v
	})
	return schemaVal, schemaErr
}

// ValidateSchema checks raw script YAML against the embedded CUE schema.
//
// This runs before strict YAML decoding so that shape mistakes (wrong
// enum value, missing selector, steps not a list) come back as positioned
// CUE errors instead of Go unmarshalling noise.
func ValidateSchema(data []byte) error {
	v, err := schema()
	if err != nil {
		return err
	}
	if err := cueyaml.Validate(data, v); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

// SchemaError wraps a CUE validation failure with line-oriented details.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("script does not match schema: %s", cueerrors.Details(e.Err, nil))
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
