package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgvdev/verdict/pkg/engine"
	"github.com/mgvdev/verdict/pkg/ruleset"
)

var evalFlags struct {
	rule    string
	context string
	name    string
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a rule against a context",
	Long: `Evaluate a rule file against a JSON context and print the outcome.

The rule file may be a bare rule document or a named rule envelope, in
JSON or YAML. The context file holds the JSON record the rule is
evaluated against; omit it to evaluate against an empty record.

The exit code reflects the outcome: 0 when the rule evaluates true,
1 when it evaluates false, 2 on error.

Examples:
  # Evaluate a rule against a context file
  verdict eval --rule adult-user.yaml --context user.json

  # Evaluate a specific rule from a directory
  verdict eval --rule rules/ --name adult-user --context user.json`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalFlags.rule, "rule", "r", "", "rule file or directory (required)")
	evalCmd.Flags().StringVarP(&evalFlags.context, "context", "c", "", "JSON context file")
	evalCmd.Flags().StringVarP(&evalFlags.name, "name", "n", "", "rule name to evaluate when --rule is a directory")
	_ = evalCmd.MarkFlagRequired("rule")

	// Exit codes carry the outcome; cobra's usage dump on error would
	// drown it.
	evalCmd.SilenceUsage = true
}

func runEval(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	source := ruleset.NewFileSource(evalFlags.rule, nil, logger)
	rules, err := source.Load()
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return fmt.Errorf("no rules found at %q", evalFlags.rule)
	}

	target := rules[0]
	if evalFlags.name != "" {
		target = nil
		for _, rl := range rules {
			if rl.Name == evalFlags.name {
				target = rl
				break
			}
		}
		if target == nil {
			return fmt.Errorf("rule %q not found at %q", evalFlags.name, evalFlags.rule)
		}
	} else if len(rules) > 1 {
		return fmt.Errorf("%d rules found at %q, select one with --name", len(rules), evalFlags.rule)
	}

	var ctx any
	if evalFlags.context != "" {
		data, err := os.ReadFile(evalFlags.context)
		if err != nil {
			return fmt.Errorf("failed to read context file: %w", err)
		}
		if err := json.Unmarshal(data, &ctx); err != nil {
			return fmt.Errorf("failed to parse context file: %w", err)
		}
	}

	eng := engine.New(engine.WithLogger(logger))
	outcome := eng.EvaluateNamed(target.Name, target.Root, ctx)

	fmt.Println(outcome)
	if !outcome {
		os.Exit(1)
	}
	return nil
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
