// Package report renders solver outcomes for the z3model CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Entry is one constant of a model.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Sort  string `json:"sort" yaml:"sort"`
	Value string `json:"value" yaml:"value"`
}

// Result is the outcome of a check together with the model, if any.
type Result struct {
	Status  string  `json:"status" yaml:"status"`
	Reason  string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	Entries []Entry `json:"model,omitempty" yaml:"model,omitempty"`
	// SMT2 is the engine's own rendering of the model.
	SMT2 string `json:"-" yaml:"-"`
}

// SortEntries orders entries by name.
func (r *Result) SortEntries() {
	sort.SliceStable(r.Entries, func(i, j int) bool {
		return r.Entries[i].Name < r.Entries[j].Name
	})
}

// Render writes r in the given format: table, smt2, yaml or json.
func Render(w io.Writer, format string, r Result) error {
	switch format {
	case "json":
		return renderJSON(w, r)
	case "yaml":
		return renderYAML(w, r)
	case "smt2":
		return renderSMT2(w, r)
	case "table", "":
		return renderTable(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, r Result) error {
	writeStatus(w, r)
	if len(r.Entries) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"name", "sort", "value"})
	for _, e := range r.Entries {
		t.AppendRow(table.Row{e.Name, e.Sort, e.Value})
	}
	t.Render()
	return nil
}

func renderSMT2(w io.Writer, r Result) error {
	writeStatus(w, r)
	if r.SMT2 == "" {
		return nil
	}
	_, err := io.WriteString(w, r.SMT2)
	return err
}

func writeStatus(w io.Writer, r Result) {
	if r.Reason != "" {
		_, _ = fmt.Fprintf(w, "%s (%s)\n", r.Status, r.Reason)
		return
	}
	_, _ = fmt.Fprintln(w, r.Status)
}

func renderJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderYAML(w io.Writer, r Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
