/*
 * Copyright 2023 The time-elapsed Authors. All rights reserved.
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

// Package main is the entry point of the time-elapsed CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "time-elapsed",
	Short: "Measure and print elapsed wall-clock time with named checkpoints",
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

// colorEnabled reports whether the timing lines should carry ANSI colors,
// honoring both the --no-color flag and the NO_COLOR environment variable.
func colorEnabled() bool {
	return !viper.GetBool("no-color")
}

func init() {
	rootCmd.PersistentFlags().Bool(
		"no-color",
		false,
		"Disable ANSI colors in the timing output",
	)
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindEnv("no-color", "NO_COLOR")
}
