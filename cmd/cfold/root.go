// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the main cfold program of this project.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cfold/logger"
	"cfold/module"
	"cfold/tools"
)

func init() {
	tools.RegEnv("CFOLD_OPCODES", "all", "Default opcodes to fold (comma-separated opcodes or groups)")
	tools.RegEnv("CFOLD_CONFIG", "", "Default YAML configuration file")
}

type rootFlags struct {
	log    string
	debug  bool
	quiet  bool
	config string

	opcodes       string
	funcs         []string
	skipFunc      []string
	verify        string
	verifyTimeout time.Duration
	report        bool
	stats         bool
	csvLog        string
}

func helpMessage() string {
	msg := `cfold -- Constant folding of LLVM IR modules

Reads the LLVM IR module <input>, replaces every binary arithmetic
instruction whose operands are both literal constants by its result and
writes the module to <output>. Either path may be "-" for standard input
or standard output.`

	msg += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		msg += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	return msg
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:           "cfold [flags] <input> <output>",
		Short:         "Constant folding of LLVM IR modules",
		Long:          helpMessage(),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,

		DisableFlagsInUseLine: true,
		Args:                  isArgs2,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetLevel(logger.ParseLevel(f.log))
			if f.debug {
				logger.SetLevel(logger.DEBUG)
				module.DebugVisitor()
			}
			if f.quiet {
				logger.SetOutput(nil)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return foldRun(cmd, args, &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.log, "log", "ERROR", "log level (ERROR|WARN|INFO|DEBUG)")
	flags.BoolVarP(&f.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&f.quiet, "quiet", "q", false, "do not produce output")
	flags.StringVar(&f.config, "config", tools.GetEnv("CFOLD_CONFIG"), "YAML configuration file")

	addFoldFlags(flags, &f)

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate(name + " {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return verror(usageError, err)
	})
	return cmd
}

func addFoldFlags(flags *pflag.FlagSet, f *rootFlags) {
	def := defaultOptions()
	flags.StringVar(&f.opcodes, "opcodes", def.Opcodes, "opcodes to fold, eg, add,mul or int,shift")
	flags.StringSliceVar(&f.funcs, "func", nil, "only fold in these functions")
	flags.StringSliceVar(&f.skipFunc, "skip-func", nil, "list of function prefixes to leave untouched")
	flags.StringVar(&f.verify, "verify", def.Verify, "verify the module before writing it (none|reparse|llvm-as)")
	flags.DurationVar(&f.verifyTimeout, "verify-timeout", 0, "abort verification after the given time")
	flags.BoolVar(&f.report, "report", false, "print a report of the folded instructions")
	flags.BoolVar(&f.stats, "stats", false, "print statistics of the sweep")
	flags.StringVar(&f.csvLog, "csv-log", "", "append a line about this run to a CSV file")
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var verr *vError
	if errors.As(err, &verr) && verr.err != nil {
		logger.Debugf("%v: %v", verr.typ, verr.err)
	}
	if msg := getErrorMessage(err); msg != "" {
		logger.Println(msg)
	}
	return getErrorCode(err)
}

func main() {
	os.Exit(execute(newRootCmd()))
}
