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
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/9elt/time-elapsed/pkg/units"
)

var unitsOutput string

// unitInfo describes one unit of the auto-scaling ladder.
type unitInfo struct {
	Unit     string `json:"unit" yaml:"unit"`
	Duration string `json:"duration" yaml:"duration"`
	Selected string `json:"selected" yaml:"selected"`
	Example  string `json:"example" yaml:"example"`
}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Show the units the timing output scales across",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputOpts(unitsOutput); err != nil {
				return err
			}

			all := units.Units()
			infos := make([]unitInfo, 0, len(all))
			for i, u := range all {
				var selected string
				switch {
				case i == 0:
					selected = fmt.Sprintf("< 1 %s", all[i+1])
				case i == len(all)-1:
					selected = fmt.Sprintf(">= 1 %s", u)
				default:
					selected = fmt.Sprintf(">= 1 %s, < 1 %s", u, all[i+1])
				}

				infos = append(infos, unitInfo{
					Unit:     u.String(),
					Duration: u.Duration().String(),
					Selected: selected,
					Example:  units.FormatPair(2 * u.Duration()),
				})
			}

			return printUnits(cmd, unitsOutput, infos)
		},
	}
}

func printUnits(cmd *cobra.Command, outputFormat string, infos []unitInfo) error {
	switch outputFormat {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false

		tw.AppendHeader(table.Row{"UNIT", "DURATION", "SELECTED", "EXAMPLE"})
		for _, info := range infos {
			tw.AppendRow(table.Row{info.Unit, info.Duration, info.Selected, info.Example})
		}
		cmd.Println(tw.Render())
	case "json":
		marshalled, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return errors.New("marshal JSON")
		}
		cmd.Println(string(marshalled))
	case "yaml":
		marshalled, err := yaml.Marshal(infos)
		if err != nil {
			return errors.New("marshal YAML")
		}
		cmd.Println(string(marshalled))
	default:
		return errors.New("unknown output format")
	}

	return nil
}

// validateOutputOpts checks the value of the --output flag shared by the
// units and version commands.
func validateOutputOpts(output string) error {
	if output != "" && output != "yaml" && output != "json" {
		return errors.New(`--output must be 'yaml' or 'json'`)
	}
	return nil
}

func init() {
	cmd := newUnitsCmd()
	cmd.Flags().StringVarP(
		&unitsOutput,
		"output",
		"o",
		unitsOutput,
		"One of 'yaml' or 'json'.",
	)

	rootCmd.AddCommand(cmd)
}
