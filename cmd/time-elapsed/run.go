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
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	timeelapsed "github.com/9elt/time-elapsed"
	"github.com/9elt/time-elapsed/internal/logging"
)

var (
	runName    string
	runVerbose bool
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command and print how long it took",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if runVerbose {
				if err := logging.SetLogLevel("debug"); err != nil {
					return err
				}
			}
			logger := logging.New("run")

			name := runName
			if name == "" {
				name = filepath.Base(args[0])
			}

			timer := timeelapsed.Start(name, timeelapsed.WithColor(colorEnabled()))

			child := exec.Command(args[0], args[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr

			if err := child.Start(); err != nil {
				return fmt.Errorf("start %s: %w", args[0], err)
			}
			logger.Debugf("process started: pid %d", child.Process.Pid)
			timer.Log("process started").Timestamp()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				for sig := range sigCh {
					logger.Debugf("forwarding signal: %s", sig)
					_ = child.Process.Signal(sig)
				}
			}()

			waitErr := child.Wait()
			timer.Log("process exited")
			timer.End()

			if waitErr != nil {
				var exitErr *exec.ExitError
				if errors.As(waitErr, &exitErr) {
					logger.Debugf("process exited with code %d", exitErr.ExitCode())
					os.Exit(exitErr.ExitCode())
				}
				return fmt.Errorf("wait for %s: %w", args[0], waitErr)
			}

			return nil
		},
	}
}

func init() {
	cmd := newRunCmd()
	cmd.Flags().StringVarP(
		&runName,
		"name",
		"n",
		runName,
		"Timer name. Defaults to the base name of the command.",
	)
	cmd.Flags().BoolVarP(
		&runVerbose,
		"verbose",
		"v",
		runVerbose,
		"Log process lifecycle details to stderr.",
	)

	rootCmd.AddCommand(cmd)
}
