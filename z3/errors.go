package z3

import (
	"errors"
	"fmt"
)

var (
	// ErrModelRender is returned when the engine cannot render a model as text.
	ErrModelRender = errors.New("z3: model cannot be rendered")

	errNilContext = errors.New("nil context")
	errNilSolver  = errors.New("nil solver")
)

// SortMismatchError is the panic value raised by ConstInterp when the
// interpretation's sort does not fit the requested expression type.
type SortMismatchError struct {
	Decl string // declaration name
	Want string // requested Go type, e.g. "z3.Int"
	Got  string // engine sort of the interpretation
}

func (e *SortMismatchError) Error() string {
	return fmt.Sprintf("z3: interpretation of %s has sort %s, not %s", e.Decl, e.Got, e.Want)
}
