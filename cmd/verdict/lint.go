package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgvdev/verdict/pkg/rule/codec"
	"gopkg.in/yaml.v3"
)

var lintCmd = &cobra.Command{
	Use:   "lint <path>",
	Short: "Validate rule files",
	Long: `Validate rule files under a path.

Each .json, .yaml and .yml file is decoded into an operator tree; files
that reference unknown operators or have malformed documents are
reported. The exit code is non-zero when any file fails.

Examples:
  # Lint a single rule file
  verdict lint adult-user.yaml

  # Lint a rule directory
  verdict lint rules/`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.SilenceUsage = true
}

func runLint(cmd *cobra.Command, args []string) error {
	root := args[0]

	var files []string
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if info.IsDir() {
		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && isRuleFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		files = []string{root}
	}

	if len(files) == 0 {
		return fmt.Errorf("no rule files found under %q", root)
	}

	registry := codec.NewRegistry()
	failed := 0
	for _, path := range files {
		if err := lintFile(registry, path); err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Printf("OK   %s\n", path)
	}

	fmt.Printf("\n%d files checked, %d failed\n", len(files), failed)
	if failed > 0 {
		return fmt.Errorf("%d rule files failed validation", failed)
	}
	return nil
}

// lintFile decodes one rule file and reports the first problem found.
func lintFile(registry *codec.Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	doc := raw
	if _, bare := raw["operator"]; !bare {
		inner, ok := raw["rule"].(map[string]any)
		if !ok {
			return fmt.Errorf(`missing "rule" document`)
		}
		doc = inner
	}

	_, err = registry.Decode(doc)
	return err
}

func isRuleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
