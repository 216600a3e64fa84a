// The MIT License (MIT)
//
// Copyright (c) 2026 The alcq authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command alcq decides consistency and subsumption for ALCQ knowledge bases
// given as YAML files.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/leechuck/alcq"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "alcq",
	Short:         "A tableau reasoner for the description logic ALCQ",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.SetConfigName("alcq")
			viper.SetConfigType("yaml")
			viper.AddConfigPath(".")
		}
		viper.SetEnvPrefix("alcq")
		viper.AutomaticEnv()
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if cfgFile != "" || !errors.As(err, &notFound) {
				return err
			}
		}
		if viper.GetBool("verbose") {
			var err error
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Decide consistency of the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := alcq.LoadKB(args[0])
		if err != nil {
			return err
		}
		solver := alcq.NewSolver(kb.TBox, alcq.WithLogger(logger))
		start := time.Now()
		switch {
		case viper.GetBool("una"):
			ok, models, err := solver.ConsistentWithObjAndT(kb.ABox)
			if err != nil {
				return err
			}
			reportModels(ok, models, solver, start)
		case viper.GetBool("with-t"):
			ok, models, err := solver.ConsistentWithT(kb.ABox)
			if err != nil {
				return err
			}
			reportModels(ok, models, solver, start)
		default:
			ok, model, err := solver.Consistent(kb.ABox)
			if err != nil {
				return err
			}
			if ok {
				pterm.Success.Printfln("consistent (%d branches, %v)", solver.Branches(), time.Since(start))
				printModel(model)
			} else {
				pterm.Error.Printfln("inconsistent (%d branches, %v)", solver.Branches(), time.Since(start))
			}
		}
		return nil
	},
}

func reportModels(ok bool, models []*alcq.ABox, solver *alcq.Solver, start time.Time) {
	if ok {
		pterm.Success.Printfln("consistent, %d models (%d branches, %v)",
			len(models), solver.Branches(), time.Since(start))
		printModel(models[0])
	} else {
		pterm.Error.Printfln("inconsistent (%d branches, %v)", solver.Branches(), time.Since(start))
	}
}

func printModel(model *alcq.ABox) {
	rows := pterm.TableData{{"assertion"}}
	for _, assertion := range model.Assertions() {
		rows = append(rows, []string{assertion.String()})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

var subsumesCmd = &cobra.Command{
	Use:   "subsumes FILE",
	Short: "Decide the premise of the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := alcq.LoadKB(args[0])
		if err != nil {
			return err
		}
		if kb.Premise == nil {
			return fmt.Errorf("%s has no premise", args[0])
		}
		solver := alcq.NewSolver(kb.TBox, alcq.WithLogger(logger))
		start := time.Now()
		counterexamples, holds, err := solver.Subsumes(kb.ABox, kb.Premise)
		if err != nil {
			return err
		}
		if holds {
			pterm.Success.Printfln("%v holds (%d branches, %v)", kb.Premise, solver.Branches(), time.Since(start))
		} else {
			pterm.Error.Printfln("%v does not hold, %d counterexamples (%d branches, %v)",
				kb.Premise, len(counterexamples), solver.Branches(), time.Since(start))
			printModel(counterexamples[0])
		}
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify FILE",
	Short: "Compute all subsumptions between the defined TBox names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := alcq.LoadKB(args[0])
		if err != nil {
			return err
		}
		solver := alcq.NewSolver(kb.TBox, alcq.WithLogger(logger))
		start := time.Now()
		subsumptions, err := solver.Classify()
		if err != nil {
			return err
		}
		rows := pterm.TableData{{"sub", "super"}}
		for _, sub := range subsumptions {
			rows = append(rows, []string{string(sub.Sub), string(sub.Super)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}
		pterm.Info.Printfln("%d subsumptions (%v)", len(subsumptions), time.Since(start))
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random problem and decide its consistency",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(viper.GetInt64("seed")))
		builder := alcq.RandomALCQBuilder{
			NumConceptNames: uint(viper.GetUint("names")),
			NumRoles:        uint(viper.GetUint("roles")),
			NumIndividuals:  uint(viper.GetUint("individuals")),
			MaxCardinality:  3,
		}
		ab := builder.GenerateABox(rng, uint(viper.GetUint("size")), uint(viper.GetUint("size")), 3)
		solver := alcq.NewSolver(alcq.NewTBox(), alcq.WithLogger(logger))
		start := time.Now()
		ok, _, err := solver.Consistent(ab)
		if err != nil {
			return err
		}
		if ok {
			pterm.Success.Printfln("consistent (%d branches, %v)", solver.Branches(), time.Since(start))
		} else {
			pterm.Error.Printfln("inconsistent (%d branches, %v)", solver.Branches(), time.Since(start))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./alcq.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace rule firings and branching")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	checkCmd.Flags().Bool("with-t", false, "force a decision on every atomic concept")
	checkCmd.Flags().Bool("una", false, "unique-name assumption (implies --with-t)")
	_ = viper.BindPFlag("with-t", checkCmd.Flags().Lookup("with-t"))
	_ = viper.BindPFlag("una", checkCmd.Flags().Lookup("una"))

	randomCmd.Flags().Int64("seed", 1, "random seed")
	randomCmd.Flags().Uint("names", 5, "number of concept names")
	randomCmd.Flags().Uint("roles", 3, "number of roles")
	randomCmd.Flags().Uint("individuals", 4, "number of individuals")
	randomCmd.Flags().Uint("size", 6, "number of assertions per kind")
	_ = viper.BindPFlag("seed", randomCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("names", randomCmd.Flags().Lookup("names"))
	_ = viper.BindPFlag("roles", randomCmd.Flags().Lookup("roles"))
	_ = viper.BindPFlag("individuals", randomCmd.Flags().Lookup("individuals"))
	_ = viper.BindPFlag("size", randomCmd.Flags().Lookup("size"))

	rootCmd.AddCommand(checkCmd, subsumesCmd, classifyCmd, randomCmd)
}

func main() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
