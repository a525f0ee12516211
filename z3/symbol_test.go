package z3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolVariants(t *testing.T) {
	tests := []struct {
		name string
		sym  Symbol
		want string
	}{
		{"int", SymbolFromUint(7), "#7"},
		{"int zero", IntSymbol(0), "#0"},
		{"int max", SymbolFromUint(^uint32(0)), "#4294967295"},
		{"string", SymbolFromString("x"), "x"},
		{"empty string", StringSymbol(""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sym.String())
		})
	}
}

func TestSymbolConversionsAreDirect(t *testing.T) {
	assert.Equal(t, Symbol(IntSymbol(3)), SymbolFromUint(3))
	assert.Equal(t, Symbol(StringSymbol("abc")), SymbolFromString("abc"))
	assert.NotEqual(t, SymbolFromUint(1), SymbolFromString("#1"))

	switch SymbolFromString("v").(type) {
	case IntSymbol:
		t.Fatal("string symbol decoded as int")
	case StringSymbol:
	default:
		t.Fatal("unexpected symbol variant")
	}
}
