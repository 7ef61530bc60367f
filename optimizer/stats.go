// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package optimizer

import (
	"fmt"
	"math"
	"sort"
	"time"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Type

// Type represents the measurement type, eg, Folded or Refused.
type Type int

const (
	// Funcs count: functions swept
	Funcs Type = iota
	// Visited count: instructions visited
	Visited
	// Excluded count: binary ops whose opcode is not selected
	Excluded
	// NonConstant count: binary ops with a non-literal operand
	NonConstant
	// Refused count: the evaluator refused to fold
	Refused
	// Folded count: instructions replaced by a constant
	Folded
	// Redirected count: operand slots redirected to a constant
	Redirected
	numTypes
)

const u2 = 2

type timeStats struct {
	sum  float64
	sum2 float64
	cnt  int
}

// Stats keeps tracks of count stats and timing measurements
type Stats struct {
	counts map[Type]int
	start  time.Time
	time   map[string]timeStats
}

// NewStats returns a new Stats object
func NewStats() *Stats {
	return &Stats{
		counts: make(map[Type]int),
		start:  time.Now(),
		time:   make(map[string]timeStats),
	}
}

// Inc increments the stats count of type t
func (s *Stats) Inc(t Type) {
	s.counts[t]++
}

// Add increments the stats count of type t by n
func (s *Stats) Add(t Type, n int) {
	s.counts[t] += n
}

// Get returns the stats count of type t
func (s *Stats) Get(t Type) int {
	return s.counts[t]
}

// AddTime adds a time durations to a tag
func (s *Stats) AddTime(tag string, d time.Duration) {
	t := s.time[tag]
	t.sum += float64(d)
	t.sum2 += float64(d) * float64(d)
	t.cnt++
	s.time[tag] = t
}

func (ts timeStats) mean() time.Duration {
	return time.Duration(ts.sum / float64(ts.cnt))
}

func (ts timeStats) sd() time.Duration {
	cnt := float64(ts.cnt)
	v := ts.sum2/cnt - math.Pow(ts.sum/cnt, u2)
	if v < 0 {
		// rounding
		v = 0
	}
	return time.Duration(math.Sqrt(v))
}

// GetTime returns the mean and standard deviation of the durations of a tag.
func (s *Stats) GetTime(tag string) (time.Duration, time.Duration) {
	if tstats, has := s.time[tag]; has {
		return tstats.mean(), tstats.sd()
	}
	return 0, 0
}

// String is the string representation of the stats object.
func (s *Stats) String() string {
	var str string
	for t := Funcs; t < numTypes; t++ {
		str += fmt.Sprintf("%11v: %d\n", t, s.counts[t])
	}

	elapsed := time.Since(s.start)
	str += fmt.Sprintf("\nTotal time: %v (%v)\n", elapsed.Seconds(), elapsed)

	var tags []string
	for tag := range s.time {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		tstats := s.time[tag]
		str += fmt.Sprintf("Mean time %s: %v (sd=%v cnt=%v)\n", tag, tstats.mean(), tstats.sd(), tstats.cnt)
	}
	return str
}
