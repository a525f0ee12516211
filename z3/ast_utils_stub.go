//go:build !cgo
// +build !cgo

package z3

import "errors"

// ASTKind is a placeholder when cgo is disabled.
type ASTKind int

const (
	ASTKindNumeral ASTKind = iota
	ASTKindApp
	ASTKindVar
	ASTKindQuantifier
	ASTKindUnknown
)

func (k ASTKind) String() string { return "ast-kind" }

// SortKind is a placeholder when cgo is disabled.
type SortKind int

func (k SortKind) String() string { return "sort-kind" }

// ErrNoCgo is returned by every entry point of the stub build.
var ErrNoCgo = errors.New("z3: cgo support is required")

func (a AST) String() string           { return "<nil>" }
func (a AST) BoolValue() (bool, bool)  { return false, false }
func (a AST) AsInt64() (int64, bool)   { return 0, false }
func (d FuncDecl) Name() string        { return "" }
func (m *Model) String() string        { return "<nil-model>" }
func (m *Model) Text() (string, error) { return "", ErrNoCgo }
