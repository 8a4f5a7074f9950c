// Package initcmd implements `calc init`: scaffolding a project's .calc
// directory with a config.yaml a user can then edit, without ever
// clobbering one that already exists unless asked to.
package initcmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/npratt/calc/internal/config"
)

// Options configures the init command's behavior.
type Options struct {
	DryRun bool
	Force  bool
	Writer io.Writer
}

// Result reports what Run did.
type Result struct {
	TargetDir string
	Created   []string
	Skipped   []string
	Unchanged []string
	Diffs     map[string]string
}

// Run scaffolds dir/.calc/config.yaml from config.Default(). If the file
// already exists and its content differs from the rendered default, Run
// reports a diff and leaves it alone unless Force is set.
func Run(dir string, opts Options) (*Result, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	rendered, err := renderDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("render default config: %w", err)
	}

	calcDir := filepath.Join(dir, ".calc")
	configPath := filepath.Join(calcDir, "config.yaml")

	result := &Result{TargetDir: calcDir, Diffs: map[string]string{}}

	existing, readErr := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(readErr):
		if opts.DryRun {
			fmt.Fprintf(w, "would create %s\n", configPath)
			result.Created = append(result.Created, configPath)
			return result, nil
		}
		if err := os.MkdirAll(calcDir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", calcDir, err)
		}
		if err := os.WriteFile(configPath, []byte(rendered), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", configPath, err)
		}
		fmt.Fprintf(w, "created %s\n", configPath)
		result.Created = append(result.Created, configPath)
		return result, nil

	case readErr != nil:
		return nil, fmt.Errorf("read %s: %w", configPath, readErr)
	}

	if string(existing) == rendered {
		fmt.Fprintf(w, "unchanged %s\n", configPath)
		result.Unchanged = append(result.Unchanged, configPath)
		return result, nil
	}

	diff := UnifiedDiff(configPath, configPath+" (default)", string(existing), rendered)
	result.Diffs[configPath] = diff

	if !opts.Force {
		fmt.Fprintf(w, "%s already exists and differs from the default; rerun with --force to overwrite\n", configPath)
		fmt.Fprint(w, diff)
		result.Skipped = append(result.Skipped, configPath)
		return result, nil
	}

	if opts.DryRun {
		fmt.Fprintf(w, "would overwrite %s\n", configPath)
		fmt.Fprint(w, diff)
		result.Created = append(result.Created, configPath)
		return result, nil
	}

	if err := os.WriteFile(configPath, []byte(rendered), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", configPath, err)
	}
	fmt.Fprintf(w, "overwrote %s\n", configPath)
	result.Created = append(result.Created, configPath)
	return result, nil
}

func renderDefaultConfig() (string, error) {
	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
