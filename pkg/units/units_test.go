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

package units_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/9elt/time-elapsed/pkg/units"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name          string
		duration      time.Duration
		expectedValue int64
		expectedUnit  units.Unit
	}{
		{
			name:          "zero falls back to nanoseconds",
			duration:      0,
			expectedValue: 0,
			expectedUnit:  units.Nanosecond,
		},
		{
			name:          "below a microsecond stays in nanoseconds",
			duration:      999 * time.Nanosecond,
			expectedValue: 999,
			expectedUnit:  units.Nanosecond,
		},
		{
			name:          "exactly one microsecond",
			duration:      time.Microsecond,
			expectedValue: 1,
			expectedUnit:  units.Microsecond,
		},
		{
			name:          "just below a millisecond",
			duration:      time.Millisecond - time.Nanosecond,
			expectedValue: 999,
			expectedUnit:  units.Microsecond,
		},
		{
			name:          "milliseconds truncate",
			duration:      2103 * time.Microsecond,
			expectedValue: 2,
			expectedUnit:  units.Millisecond,
		},
		{
			name:          "200000 microseconds scale to 200 ms",
			duration:      200000 * time.Microsecond,
			expectedValue: 200,
			expectedUnit:  units.Millisecond,
		},
		{
			name:          "just below a second",
			duration:      time.Second - time.Nanosecond,
			expectedValue: 999,
			expectedUnit:  units.Millisecond,
		},
		{
			name:          "seconds until a minute",
			duration:      59 * time.Second,
			expectedValue: 59,
			expectedUnit:  units.Second,
		},
		{
			name:          "exactly one minute",
			duration:      time.Minute,
			expectedValue: 1,
			expectedUnit:  units.Minute,
		},
		{
			name:          "minutes until an hour",
			duration:      59*time.Minute + 59*time.Second,
			expectedValue: 59,
			expectedUnit:  units.Minute,
		},
		{
			name:          "hours have no upper bound",
			duration:      25 * time.Hour,
			expectedValue: 25,
			expectedUnit:  units.Hour,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, u := units.Scale(test.duration)
			assert.Equal(t, test.expectedValue, v)
			assert.Equal(t, test.expectedUnit, u)
		})
	}
}

func TestScalePicksLargestUnitAtLeastOne(t *testing.T) {
	// Sweep durations across six orders of magnitude and check the policy
	// directly: the chosen unit yields a value >= 1 whenever the duration is
	// at least a microsecond, and no larger unit would.
	for d := time.Duration(1); d < 48*time.Hour; d *= 7 {
		v, u := units.Scale(d)
		if d >= time.Microsecond {
			assert.GreaterOrEqual(t, v, int64(1), "duration %v scaled to %d %s", d, v, u)
		}
		if u != units.Hour {
			next := u + 1
			assert.Less(t, int64(d/next.Duration()), int64(1),
				"duration %v should not reach %s", d, next)
		}
	}
}

func TestFiner(t *testing.T) {
	assert.Equal(t, units.Nanosecond, units.Nanosecond.Finer())
	assert.Equal(t, units.Nanosecond, units.Microsecond.Finer())
	assert.Equal(t, units.Microsecond, units.Millisecond.Finer())
	assert.Equal(t, units.Millisecond, units.Second.Finer())
	assert.Equal(t, units.Second, units.Minute.Finer())
	assert.Equal(t, units.Minute, units.Hour.Finer())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0 ns", units.Format(0))
	assert.Equal(t, "200 ms", units.Format(200*time.Millisecond))
	assert.Equal(t, "2 ms", units.Format(2103*time.Microsecond))
	assert.Equal(t, "3 s", units.Format(3*time.Second+500*time.Millisecond))
}

func TestFormatPair(t *testing.T) {
	assert.Equal(t, "202 ms (202271 μs)", units.FormatPair(202271*time.Microsecond))
	assert.Equal(t, "1 s (1042 ms)", units.FormatPair(1042*time.Millisecond))
	assert.Equal(t, "512 ns (512 ns)", units.FormatPair(512*time.Nanosecond))
	assert.Equal(t, "2 min (120 s)", units.FormatPair(2*time.Minute))
}

func TestConvert(t *testing.T) {
	assert.Equal(t, int64(202271), units.Convert(202271*time.Microsecond, units.Microsecond))
	assert.Equal(t, int64(202), units.Convert(202271*time.Microsecond, units.Millisecond))
	assert.Equal(t, int64(0), units.Convert(999*time.Millisecond, units.Second))
}

func TestUnits(t *testing.T) {
	all := units.Units()
	assert.Len(t, all, 6)
	assert.Equal(t, units.Nanosecond, all[0])
	assert.Equal(t, units.Hour, all[len(all)-1])

	// Each unit must be strictly larger than the previous so that Scale's
	// largest-first search terminates on the right unit.
	for i := 1; i < len(all); i++ {
		assert.Greater(t, int64(all[i].Duration()), int64(all[i-1].Duration()))
	}
}
