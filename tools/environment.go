// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
	"sort"
	"strings"
)

// Envvar is an environment variable understood by cfold.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var envvars = make(map[string]Envvar)

// RegEnv registers an environment variable with its default value and a
// description shown in the help message.
func RegEnv(name, defv, desc string) {
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnv returns the value of a registered environment variable or its
// default value if the variable is not set.
func GetEnv(name string) string {
	if v, has := os.LookupEnv(name); has {
		return v
	}
	return envvars[name].Defv
}

// GetEnvvars returns all registered environment variables sorted by name.
func GetEnvvars() []Envvar {
	var evs []Envvar
	for _, ev := range envvars {
		evs = append(evs, ev)
	}
	sort.Slice(evs, func(i, j int) bool {
		return evs[i].Name < evs[j].Name
	})
	return evs
}

// FindCmd looks for the value of an environment variable.
// If not set returns a default value.
func FindCmd(envVar string, defaultVal ...string) []string {
	if cmd := strings.Fields(GetEnv(envVar)); len(cmd) > 0 {
		return cmd
	}
	return defaultVal
}
