/*
 * Copyright 2022 The time-elapsed Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package units converts elapsed durations to human-scale units of
// measurement for console display.
package units

import (
	"fmt"
	"time"
)

// Unit is a unit of measurement for displaying elapsed time.
type Unit int

// The units that Scale chooses from, smallest first.
const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
)

var symbols = [...]string{"ns", "μs", "ms", "s", "min", "hrs"}

var sizes = [...]time.Duration{
	time.Nanosecond,
	time.Microsecond,
	time.Millisecond,
	time.Second,
	time.Minute,
	time.Hour,
}

// String returns the display symbol of the unit.
func (u Unit) String() string {
	if u < Nanosecond || u > Hour {
		return "ns"
	}
	return symbols[u]
}

// Duration returns the span of a single unit.
func (u Unit) Duration() time.Duration {
	if u < Nanosecond || u > Hour {
		return time.Nanosecond
	}
	return sizes[u]
}

// Finer returns the next smaller unit. Nanosecond maps to itself.
func (u Unit) Finer() Unit {
	if u <= Nanosecond || u > Hour {
		return Nanosecond
	}
	return u - 1
}

// Units returns all units, smallest first.
func Units() []Unit {
	return []Unit{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour}
}

// Scale picks the largest unit in which the given duration is at least one
// and returns the truncated value in that unit. Durations below a microsecond
// fall back to nanoseconds.
func Scale(d time.Duration) (int64, Unit) {
	for u := Hour; u > Nanosecond; u-- {
		if d >= sizes[u] {
			return Convert(d, u), u
		}
	}
	return Convert(d, Nanosecond), Nanosecond
}

// Convert returns the truncated value of the duration in the given unit.
func Convert(d time.Duration, u Unit) int64 {
	return int64(d / u.Duration())
}

// Format renders the duration in its auto-scaled unit, e.g. "200 ms".
func Format(d time.Duration) string {
	v, u := Scale(d)
	return fmt.Sprintf("%d %s", v, u)
}

// FormatPair renders the duration in its auto-scaled unit followed by the
// same duration in the next finer unit, e.g. "202 ms (202271 μs)".
func FormatPair(d time.Duration) string {
	v, u := Scale(d)
	return fmt.Sprintf("%d %s (%d %s)", v, u, Convert(d, u.Finer()), u.Finer())
}
