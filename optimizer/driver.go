// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package optimizer contains the constant-folding sweep of cfold. Given an evaluator, the driver
// replaces every binary arithmetic instruction with literal operands by its constant result.
package optimizer

import (
	"time"

	"github.com/llir/llvm/ir"

	"cfold/core"
	"cfold/logger"
	"cfold/module"
)

// DriverConfig represents the configuration of the driver
type DriverConfig struct {
	Evaluator core.Evaluator // nil selects core.DefaultEvaluator
}

// Driver is the object that coordinates the sweep
type Driver struct {
	cfg   DriverConfig
	stats *Stats
}

// NewDriver returns a new driver object. If stats is nil, the driver keeps
// its own statistics.
func NewDriver(cfg DriverConfig, stats *Stats) *Driver {
	if cfg.Evaluator == nil {
		cfg.Evaluator = core.DefaultEvaluator()
	}
	if stats == nil {
		stats = NewStats()
	}
	return &Driver{
		cfg:   cfg,
		stats: stats,
	}
}

// Stats returns the statistics of the driver.
func (d *Driver) Stats() *Stats {
	return d.stats
}

// FoldableModule is the module interface expected by the driver.
type FoldableModule interface {
	Visit(v module.Visitor) error
	Config() module.Config
}

// Skip records a candidate instruction the evaluator refused to fold.
type Skip struct {
	Func   string
	Inst   string
	Reason error
}

// Result lists what a sweep did to a module.
type Result struct {
	Folds []*module.Fold
	Skips []Skip
}

// Run performs a single constant-folding sweep over m. Instructions are
// visited in program order, so a chain of foldable instructions collapses
// in one sweep when each link follows the previous one.
func (d *Driver) Run(m FoldableModule) (Result, error) {
	ts := time.Now()
	s := &sweep{
		Driver:  d,
		opcodes: m.Config().Opcodes,
	}
	err := m.Visit(s)
	d.stats.AddTime("sweep", time.Since(ts))
	return s.res, err
}

type sweep struct {
	*Driver
	opcodes core.OpcodeSet
	uses    module.Uses
	res     Result
}

func (s *sweep) EnterFunc(f *ir.Func) {
	s.uses = module.NewUses(f)
	s.stats.Inc(Funcs)
}

func (s *sweep) VisitInst(inst ir.Instruction, site module.Site) module.Action {
	s.stats.Inc(Visited)
	op, ok := module.AsBinaryOp(inst)
	if !ok {
		return module.Keep
	}
	if !s.opcodes.Has(op.Opcode) {
		s.stats.Inc(Excluded)
		return module.Keep
	}
	if !op.Constant() {
		s.stats.Inc(NonConstant)
		return module.Keep
	}

	c, err := module.Eval(s.cfg.Evaluator, op)
	if err != nil {
		logger.Debugf("Skip %s: %v", inst.LLString(), err)
		s.stats.Inc(Refused)
		s.res.Skips = append(s.res.Skips, Skip{
			Func:   site.Func.Ident(),
			Inst:   inst.LLString(),
			Reason: err,
		})
		return module.Keep
	}

	fold := module.NewFold(inst, site, c, s.uses.Count(inst))
	n := s.uses.Redirect(inst, c)
	logger.Infof("Fold %s => %s (%d uses)", fold.Inst, fold.Result, n)
	s.stats.Inc(Folded)
	s.stats.Add(Redirected, n)
	s.res.Folds = append(s.res.Folds, fold)
	return module.Detach
}
