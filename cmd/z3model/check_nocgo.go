//go:build !cgo
// +build !cgo

package main

import (
	"log/slog"

	"github.com/vhavlena/z3model/internal/config"
	"github.com/vhavlena/z3model/internal/report"
	"github.com/vhavlena/z3model/z3"
)

func check(_ *config.Config, _ *slog.Logger, _ string, _ []string) (report.Result, error) {
	return report.Result{}, z3.ErrNoCgo
}
