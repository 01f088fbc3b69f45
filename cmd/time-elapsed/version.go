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
	"encoding/json"
	"errors"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/9elt/time-elapsed/internal/version"
)

var versionOutput string

// versionInfo is the build information printed by the version command.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of time-elapsed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputOpts(versionOutput); err != nil {
				return err
			}

			info := versionInfo{
				Version:   version.Version,
				GoVersion: runtime.Version(),
				BuildDate: version.BuildDate,
			}

			switch versionOutput {
			case "":
				cmd.Printf("time-elapsed: %s\n", info.Version)
				cmd.Printf("Go: %s\n", info.GoVersion)
				if info.BuildDate != "" {
					cmd.Printf("Build Date: %s\n", info.BuildDate)
				}
			case "json":
				marshalled, err := json.MarshalIndent(&info, "", "  ")
				if err != nil {
					return errors.New("marshal JSON")
				}
				cmd.Println(string(marshalled))
			case "yaml":
				marshalled, err := yaml.Marshal(&info)
				if err != nil {
					return errors.New("marshal YAML")
				}
				cmd.Println(string(marshalled))
			}

			return nil
		},
	}
}

func init() {
	cmd := newVersionCmd()
	cmd.Flags().StringVarP(
		&versionOutput,
		"output",
		"o",
		versionOutput,
		"One of 'yaml' or 'json'.",
	)

	rootCmd.AddCommand(cmd)
}
