package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() Result {
	return Result{
		Status: "sat",
		Entries: []Entry{
			{Name: "y", Sort: "Int", Value: "3"},
			{Name: "x", Sort: "Int", Value: "(- 1)"},
			{Name: "s", Sort: "String", Value: `"ab"`},
		},
		SMT2: "(define-fun x () Int\n  (- 1))\n",
	}
}

func TestSortEntries(t *testing.T) {
	r := sample()
	r.SortEntries()
	names := []string{}
	for _, e := range r.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"s", "x", "y"}, names)
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "table", sample()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "sat\n"))
	for _, want := range []string{"name", "sort", "value", "(- 1)", `"ab"`, "String"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "NAME", "headers keep their case")
}

func TestRender_TableWithoutModel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "", Result{Status: "unknown", Reason: "timeout"}))
	assert.Equal(t, "unknown (timeout)\n", buf.String())
}

func TestRender_SMT2(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "smt2", sample()))
	assert.Equal(t, "sat\n(define-fun x () Int\n  (- 1))\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, "smt2", Result{Status: "unsat"}))
	assert.Equal(t, "unsat\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "json", sample()))

	var got Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "sat", got.Status)
	assert.Len(t, got.Entries, 3)
	assert.Empty(t, got.SMT2)
	assert.NotContains(t, buf.String(), "reason")
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "yaml", sample()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "sat", got["status"])
	model, ok := got["model"].([]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "y", "sort": "Int", "value": "3"}, model[0])
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "xml", sample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
