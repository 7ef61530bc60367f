// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jinzhu/copier"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cfold/logger"
	"cfold/tools"
)

// options is the effective configuration of a run. Values come from the
// built-in defaults, the YAML configuration file and the command line, in
// increasing order of precedence.
type options struct {
	Opcodes       string        `yaml:"opcodes"`
	Funcs         []string      `yaml:"funcs"`
	SkipFunc      []string      `yaml:"skip_func"`
	Verify        string        `yaml:"verify"`
	VerifyTimeout time.Duration `yaml:"verify_timeout"`
	Report        bool          `yaml:"report"`
	Stats         bool          `yaml:"stats"`
	CSVLog        string        `yaml:"csv_log"`
}

func defaultOptions() options {
	return options{
		Opcodes: tools.GetEnv("CFOLD_OPCODES"),
		Verify:  "none",
	}
}

func readOptions(fn string) (options, error) {
	var opts options
	fp, err := os.Open(fn)
	if err != nil {
		return opts, err
	}
	defer func() {
		if err := fp.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()

	dec := yaml.NewDecoder(fp)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("could not parse '%s': %w", fn, err)
	}
	return opts, nil
}

func loadOptions(cmd *cobra.Command, f *rootFlags) (options, error) {
	opts := defaultOptions()

	if f.config != "" {
		logger.Infof("Read configuration '%s'", f.config)
		fileOpts, err := readOptions(f.config)
		if err != nil {
			return opts, err
		}
		if err := copier.CopyWithOption(&opts, &fileOpts, copier.Option{IgnoreEmpty: true}); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("opcodes") {
		opts.Opcodes = f.opcodes
	}
	if flags.Changed("func") {
		opts.Funcs = f.funcs
	}
	if flags.Changed("skip-func") {
		opts.SkipFunc = f.skipFunc
	}
	if flags.Changed("verify") {
		opts.Verify = f.verify
	}
	if flags.Changed("verify-timeout") {
		opts.VerifyTimeout = f.verifyTimeout
	}
	if flags.Changed("report") {
		opts.Report = f.report
	}
	if flags.Changed("stats") {
		opts.Stats = f.stats
	}
	if flags.Changed("csv-log") {
		opts.CSVLog = f.csvLog
	}

	logger.Debugf("Effective configuration:\n%# v", pretty.Formatter(opts))
	return opts, nil
}
