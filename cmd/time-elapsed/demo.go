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

package main

import (
	"time"

	"github.com/spf13/cobra"

	timeelapsed "github.com/9elt/time-elapsed"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the documented example with artificial pauses",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := timeelapsed.Start("test", timeelapsed.WithColor(colorEnabled()))

			time.Sleep(200 * time.Millisecond)

			t.Log("Log prints a message and the time elapsed").Timestamp()

			time.Sleep(2 * time.Millisecond)

			t.Log("this is an offset from the previous Timestamp")

			t.LogOverall("LogOverall ignores timestamps")

			t.End()

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newDemoCmd())
}
