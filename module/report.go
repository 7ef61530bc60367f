// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"cfold/logger"
)

var (
	instColor   = color.New(color.FgRed).SprintFunc()
	resultColor = color.New(color.FgGreen).SprintFunc()
	locColor    = color.New(color.FgCyan).SprintFunc()
	headColor   = color.New(color.BgCyan, color.FgBlack).SprintFunc()
)

// PrintReport displays at the diagnostic stream one entry per fold.
func PrintReport(folds []*Fold) {
	var buf strings.Builder
	if err := WriteReport(&buf, folds); err != nil {
		logger.Warnf("cannot print report: %v", err)
	}
	logger.Print(buf.String())
}

// WriteReport writes one entry per fold to w. If the source file of a fold
// location can be read, the source line is shown annotated.
func WriteReport(w io.Writer, folds []*Fold) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", headColor("== FOLDS ====================================")); err != nil {
		return err
	}
	for i, d := range folds {
		if err := writeFold(w, i, d); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d instruction(s) folded\n", len(folds))
	return err
}

func writeFold(w io.Writer, i int, d *Fold) error {
	where := fmt.Sprintf("%s %s", d.Func, d.Block)
	if d.Loc.Valid() {
		where += " " + locColor(fmt.Sprintf("%s:%d:%d", d.Loc.Filename, d.Loc.Line, d.Loc.Column))
	}
	if _, err := fmt.Fprintf(w, "[%d] %s\n", i, where); err != nil {
		return err
	}
	if d.Loc.Valid() {
		if line, err := readLineFromFile(d.Loc.Filename, d.Loc.Line); err == nil {
			if _, err := fmt.Fprintf(w, "%s\n", annotate(line, d.Loc.Column)); err != nil {
				return err
			}
		} else {
			logger.Debugf("no source for fold %d: %v", i, err)
		}
	}
	_, err := fmt.Fprintf(w, "    %s => %s (%s)\n\n", instColor(d.Inst), resultColor(d.Result), plural(d.Uses, "use"))
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func readLineFromFile(fn string, line int64) (string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	scanner := bufio.NewScanner(f)
	for i := int64(0); scanner.Scan(); i++ {
		if i+1 == line {
			return scanner.Text(), scanner.Err()
		}
	}

	return "", fmt.Errorf("could not find line %d in file %s", line, fn)
}

func annotate(text string, col int64) string {
	if text == "" {
		return text
	}
	str := ""
	for i := int64(0); i < col-1 && i < int64(len(text)); i++ {
		if text[i] == '\t' {
			str += "\t"
		} else {
			str += " "
		}
	}
	str += "^~~~~~~~~~"
	return text + "\n" + str
}
