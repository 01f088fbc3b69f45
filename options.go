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

package timeelapsed

import (
	"io"
	"os"
)

// Option configures Options.
type Option func(*Options)

// Options configures how a Timer presents its output.
type Options struct {
	// Writer is the destination of the timing lines.
	Writer io.Writer

	// Color enables ANSI-colored output.
	Color bool
}

// WithWriter configures the destination of the timing lines.
func WithWriter(w io.Writer) Option {
	return func(o *Options) { o.Writer = w }
}

// WithColor configures whether the timing lines are colored.
func WithColor(enabled bool) Option {
	return func(o *Options) { o.Color = enabled }
}

func defaultOptions() *Options {
	return &Options{
		Writer: os.Stdout,
		Color:  true,
	}
}
