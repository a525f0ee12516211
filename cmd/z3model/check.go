//go:build cgo
// +build cgo

package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/vhavlena/z3model/internal/config"
	"github.com/vhavlena/z3model/internal/report"
	"github.com/vhavlena/z3model/z3"
)

// checker is the part of Solver and Optimize that check needs.
type checker interface {
	SetOption(name string, value any) error
	Check() (z3.CheckResult, error)
	Consts() []z3.FuncDecl
	Close()
}

// check loads path, runs the configured engine and collects the model. With
// terms, the result holds their values instead of the full assignment.
func check(cfg *config.Config, log *slog.Logger, path string, terms []string) (report.Result, error) {
	zcfg := z3.NewConfig()
	for _, name := range slices.Sorted(maps.Keys(cfg.Params)) {
		zcfg.SetParam(name, cfg.Params[name])
	}
	ctx := z3.NewContext(zcfg)
	zcfg.Close()
	defer ctx.Close()

	var (
		engine  checker
		loadErr error
		model   func() (*z3.Model, bool)
	)
	if cfg.Optimize {
		o := ctx.NewOptimize()
		engine = o
		loadErr = o.FromFile(path)
		model = func() (*z3.Model, bool) { return z3.ModelOfOptimize(o) }
	} else {
		s := ctx.NewSolver()
		engine = s
		loadErr = s.AssertSMTLIB2File(path)
		model = func() (*z3.Model, bool) { return z3.ModelOfSolver(s) }
	}
	defer engine.Close()
	if loadErr != nil {
		return report.Result{}, fmt.Errorf("failed to load %s: %w", path, loadErr)
	}

	opts := cfg.SolverOptions()
	for _, name := range slices.Sorted(maps.Keys(opts)) {
		if err := engine.SetOption(name, opts[name]); err != nil {
			return report.Result{}, fmt.Errorf("option %s: %w", name, err)
		}
	}

	res, err := engine.Check()
	log.Debug("checked", "file", path, "result", res, "optimize", cfg.Optimize)
	out := report.Result{Status: res.String()}
	if err != nil {
		out.Reason = err.Error()
	}
	if res != z3.Sat {
		return out, nil
	}

	m, ok := model()
	if !ok {
		log.Warn("no model available", "file", path)
		return out, nil
	}
	defer m.Close()

	decls := engine.Consts()
	if cfg.Translate {
		dest := z3.NewContext(nil)
		defer dest.Close()
		moved := m.Translate(dest)
		if moved == nil {
			return out, fmt.Errorf("failed to translate model of %s", path)
		}
		defer moved.Close()
		m = moved
		// declarations of the source context cannot name terms in dest
		decls = m.ConstDecls()
		log.Debug("translated model", "consts", m.NumConsts())
	}

	if text, err := m.Text(); err != nil {
		log.Warn("model has no text rendering", "error", err)
	} else {
		out.SMT2 = text
	}

	if len(terms) == 0 {
		for _, a := range m.Assignments() {
			out.Entries = append(out.Entries, report.Entry{Name: a.Name, Sort: a.Sort, Value: a.Value.String()})
		}
		out.SortEntries()
		return out, nil
	}

	for _, text := range terms {
		term, err := m.Context().ParseTerm(text, decls...)
		if err != nil {
			return out, fmt.Errorf("term %q: %w", text, err)
		}
		v, ok := z3.Eval(m, term, cfg.Completion)
		if !ok {
			return out, fmt.Errorf("term %q: evaluation failed", text)
		}
		out.Entries = append(out.Entries, report.Entry{Name: text, Sort: v.Sort().String(), Value: v.String()})
	}
	return out, nil
}
