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

/*
Package timeelapsed provides a concise way to measure and print elapsed
wall-clock time inside a function, with named checkpoints and automatic unit
scaling for human-readable console output.

	t := timeelapsed.Start("test")

	// ... work for about 200 ms ...

	t.Log("a message and the time elapsed").Timestamp()

	// ... work for about 2 ms ...

	t.Log("an offset from the previous Timestamp")
	t.LogOverall("LogOverall ignores timestamps")
	t.End()

The output:

	running test...
	(test) a message and the time elapsed -> 200 ms
	(test) an offset from the previous Timestamp -> 2 ms
	(test) LogOverall ignores timestamps -> 202 ms
	test finished in 202 ms (202271 μs)

Measuring adds a small overhead; for durations in the order of nanoseconds or
a few microseconds, reach for testing.B instead.

A Timer belongs to a single call stack and is not safe for concurrent use.
*/
package timeelapsed

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/9elt/time-elapsed/pkg/units"
)

var (
	nameColors  = text.Colors{text.FgGreen, text.Bold}
	msgColors   = text.Colors{text.Bold}
	valueColors = text.Colors{text.FgMagenta, text.Bold}
)

// Timer measures elapsed wall-clock time from its creation and from the most
// recent checkpoint. Create one with Start.
type Timer struct {
	name    string
	options *Options

	// created is immutable once set; checkpoint tracks the most recent
	// Timestamp call and equals created until the first one.
	created    time.Time
	checkpoint time.Time
}

// Start begins a named benchmark and prints the `running <name>...` banner.
// The banner is written before the clock is read; the write is not part of
// the measurement.
func Start(name string, opts ...Option) *Timer {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	t := &Timer{
		name:    name,
		options: options,
	}
	fmt.Fprintf(options.Writer, "running %s...\n", name)

	t.created = time.Now()
	t.checkpoint = time.Now()
	return t
}

// Log prints the message followed by the elapsed time since the previous
// checkpoint. It returns the Timer so a Timestamp call can be chained.
func (t *Timer) Log(msg string) *Timer {
	t.print(msg, time.Since(t.checkpoint))
	return t
}

// LogOverall prints the message followed by the elapsed time since Start,
// ignoring checkpoints. It returns the Timer.
func (t *Timer) LogOverall(msg string) *Timer {
	t.print(msg, time.Since(t.created))
	return t
}

// Timestamp resets the checkpoint that Log measures from and returns the new
// checkpoint instant.
func (t *Timer) Timestamp() time.Time {
	t.checkpoint = time.Now()
	return t.checkpoint
}

// End prints the total elapsed time since Start in the auto-scaled unit,
// followed by the same duration in the next finer unit. The Timer is done
// afterward, though calls on it keep working.
func (t *Timer) End() {
	elapsed := time.Since(t.created)
	v, u := units.Scale(elapsed)
	fmt.Fprintf(
		t.options.Writer,
		"%s in %s (%d %s)\n",
		t.paint(nameColors, t.name+" finished"),
		t.paint(valueColors, fmt.Sprintf("%d %s", v, u)),
		units.Convert(elapsed, u.Finer()),
		u.Finer(),
	)
}

// Elapsed returns the time elapsed since the previous checkpoint.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.checkpoint)
}

// Overall returns the time elapsed since Start, ignoring checkpoints.
func (t *Timer) Overall() time.Duration {
	return time.Since(t.created)
}

// Name returns the display name the Timer was started with.
func (t *Timer) Name() string {
	return t.name
}

// print writes a single `(<name>) <msg> -> <value> <unit>` line.
func (t *Timer) print(msg string, elapsed time.Duration) {
	fmt.Fprintf(
		t.options.Writer,
		"(%s) %s -> %s\n",
		t.paint(nameColors, t.name),
		t.paint(msgColors, msg),
		t.paint(valueColors, units.Format(elapsed)),
	)
}

func (t *Timer) paint(colors text.Colors, s string) string {
	if !t.options.Color {
		return s
	}
	return colors.Sprint(s)
}
