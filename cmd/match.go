/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/ImpactsWiki/impedance-match-app/InputParameters"
	"github.com/ImpactsWiki/impedance-match-app/eos"
	"github.com/ImpactsWiki/impedance-match-app/impedance_match"
	"github.com/ImpactsWiki/impedance-match-app/materials"
)

// MatchCmd represents the match command
var MatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Solve a 2-4 layer impedance-match chain",
	Long: `
Solves the impedance-match chain for an ordered stack of 2-4 materials,
impactor first, at the given impact velocity.

impedance-match match --vel 2.0 -1 Aluminum -2 Aluminum -3 PMMA`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ip       InputParameters.MatchParameters
			input, _ = cmd.Flags().GetString("input")
		)
		if input != "" {
			data, err := os.ReadFile(input)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		} else {
			vel, _ := cmd.Flags().GetFloat64("vel")
			ip.ImpactVelocity = vel * 1.e3 // km/s to m/s
			for _, f := range []string{"mat1", "mat2", "mat3", "mat4"} {
				if name, _ := cmd.Flags().GetString(f); name != "" {
					ip.Materials = append(ip.Materials, name)
				}
			}
			ip.GridPoints, _ = cmd.Flags().GetInt("points")
			ip.SpanFactor, _ = cmd.Flags().GetFloat64("spanFactor")
			ip.UseMGModel, _ = cmd.Flags().GetBool("mg")
		}
		if mf, _ := cmd.Flags().GetString("materialsFile"); ip.MaterialsFile == "" {
			ip.MaterialsFile = mf
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		ip.Print()
		RunMatch(&ip)
	},
}

func init() {
	rootCmd.AddCommand(MatchCmd)
	MatchCmd.Flags().StringP("input", "i", "", "YAML run-parameter file (overrides the other flags)")
	MatchCmd.Flags().String("materialsFile", "materials.yaml", "materials database file")
	MatchCmd.Flags().Float64P("vel", "v", 0, "impact velocity (km/s)")
	MatchCmd.Flags().StringP("mat1", "1", "", "impactor material name")
	MatchCmd.Flags().StringP("mat2", "2", "", "first target material name")
	MatchCmd.Flags().StringP("mat3", "3", "", "optional second target material name")
	MatchCmd.Flags().StringP("mat4", "4", "", "optional third target material name")
	MatchCmd.Flags().IntP("points", "n", impedance_match.DefaultGridPoints, "particle-velocity grid points")
	MatchCmd.Flags().Float64("spanFactor", impedance_match.DefaultSpanFactor, "grid span as a multiple of impact velocity (>= 2)")
	MatchCmd.Flags().Bool("mg", false, "use the Mie-Gruneisen model for release and reshock (can be unstable)")
	MatchCmd.Flags().Bool("profile", false, "write a CPU profile for this run")
}

// RunMatch resolves the material names, solves the chain, and prints the
// per-interface states.
func RunMatch(ip *InputParameters.MatchParameters) {
	db, err := materials.Load(ip.MaterialsFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	stack := impedance_match.Stack{
		ImpactVelocity: ip.ImpactVelocity,
		GridPoints:     ip.GridPoints,
		SpanFactor:     ip.SpanFactor,
		UseMGModel:     ip.UseMGModel,
	}
	for _, name := range ip.Materials {
		m, err := db.Lookup(name)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		stack.Materials = append(stack.Materials, m)
	}
	sol, err := stack.Solve()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	for _, iface := range sol.Interfaces {
		fmt.Printf("%s -> %s (%s):\n", iface.Upstream, iface.Downstream, iface.Branch)
		printState("  "+iface.Upstream, iface.UpstreamState)
		printState("  "+iface.Downstream, iface.DownstreamState)
	}
	if !sol.Ok {
		fmt.Printf("MATCH FAILED at interface %d: %s\n", sol.FailedInterface+1, sol.Reason)
		os.Exit(1)
	}
}

func printState(name string, pt eos.Point) {
	fmt.Printf("%s: up =%8.3f km/s, P =%9.3f GPa, E =%9.4f MJ/kg, rho =%8.3f g/cm3\n",
		name, pt.Up/1.e3, pt.P/1.e9, pt.E/1.e6, 1/pt.V/1.e3)
}
