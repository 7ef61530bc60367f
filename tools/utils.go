// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"cfold/logger"
)

const (
	fileMode = 0600
	outMode  = 0644
)

// Touch creates a new empty temporary file in dir with the given file pattern.
// If dir is empty, the default directory for temporary files is used.
func Touch(dir, pattern string) (string, error) {
	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	if err := tmp.Close(); err != nil {
		logger.Warnf("error closing file: %v", err)
	}
	return tmp.Name(), nil
}

// RunCmd runs a command line with arguments and environment variable assignments
func RunCmd(cmdl string, args, env []string) (string, error) {
	return RunCmdContext(context.Background(), cmdl, args, env)
}

// RunCmdContext runs a command line with arguments and environment variable assignments and a context
func RunCmdContext(ctx context.Context, cmdl string, args, env []string) (string, error) {
	logger.Debug(append(append(env, cmdl), args...))
	cmd := exec.CommandContext(ctx, cmdl, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()

	sout := string(out)
	if err == nil {
		return sout, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return sout, ctxErr
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return sout, err
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// remove newline of output
		if end := len(sout); end > 0 && sout[end-1] == '\n' {
			sout = sout[:end-1]
		}
		if sout != "" {
			return sout, fmt.Errorf("%v: %s", err, sout)
		}
		return sout, err
	}
	return sout, fmt.Errorf("unknown error: %v", err)
}

// Remove deletes a file.
func Remove(fn string) error {
	logger.Debugf("Remove file '%s'", fn)
	return os.Remove(fn)
}

// Dump writes the current state of the module to a file.
func Dump(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = fmt.Fprint(out, m)
	return err
}

// DumpAtomic writes m to a temporary file next to fn and renames it to fn.
// An existing fn keeps its permissions. On failure fn is left untouched and
// the temporary file is removed.
func DumpAtomic(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s' atomically", fn)
	mode := os.FileMode(outMode)
	if fi, err := os.Stat(fn); err == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(fn), "."+filepath.Base(fn)+".*.tmp")
	if err != nil {
		return err
	}
	tfn := tmp.Name()
	if err = tmp.Chmod(mode); err == nil {
		_, err = fmt.Fprint(tmp, m)
	}
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tfn, fn)
	}
	if err != nil {
		if rerr := os.Remove(tfn); rerr != nil && !os.IsNotExist(rerr) {
			logger.Warnf("error removing temporary file: %v", rerr)
		}
		return err
	}
	return nil
}
