// Package main provides the boon command, which compiles a JSON Schema and
// validates instance documents against it.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"charm.land/log/v2"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/santhosh-tekuri/boon"
)

var drafts = map[int]*boon.Draft{
	4:    boon.Draft4,
	6:    boon.Draft6,
	7:    boon.Draft7,
	2019: boon.Draft2019,
	2020: boon.Draft2020,
}

type config struct {
	draft         int
	output        string
	assertFormat  bool
	assertContent bool
	insecure      bool
	verbose       bool
}

func main() {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "boon [flags] schema.json [instance.json ...]",
		Short: "Validate JSON documents against a JSON Schema",
		Long: `boon compiles the given schema (drafts 4, 6, 7, 2019-09 and 2020-12) and
validates each instance document against it. Instances with .yaml or .yml
extensions are parsed as YAML.

Exit status is 1 when any instance is invalid, 2 when the schema does not
compile.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&cfg.draft, "draft", 2020, "draft used when $schema is absent (4, 6, 7, 2019, 2020)")
	flags.StringVarP(&cfg.output, "output", "o", "detailed", "output format: flag, basic or detailed")
	flags.BoolVar(&cfg.assertFormat, "assert-format", false, "enable format assertions for drafts >= 2019-09")
	flags.BoolVar(&cfg.assertContent, "assert-content", false, "enable content assertions for drafts >= 7")
	flags.BoolVar(&cfg.insecure, "insecure", false, "allow loading schemas over http(s)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log compilation and validation steps")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if _, ok := err.(*invalidInstanceError); ok {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

type invalidInstanceError struct {
	count int
}

func (e *invalidInstanceError) Error() string {
	return fmt.Sprintf("%d instance(s) failed validation", e.count)
}

func run(cfg *config, args []string) error {
	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}
	draft, ok := drafts[cfg.draft]
	if !ok {
		return fmt.Errorf("unknown draft %d", cfg.draft)
	}
	switch cfg.output {
	case "flag", "basic", "detailed":
	default:
		return fmt.Errorf("unknown output format %q", cfg.output)
	}

	c := boon.NewCompiler()
	c.DefaultDraft(draft)
	c.AssertFormat = cfg.assertFormat
	c.AssertContent = cfg.assertContent
	if cfg.insecure {
		httpLoader := boon.HTTPLoader(http.Client{Timeout: 15 * time.Second})
		c.UseLoader(boon.SchemeURLLoader{
			"file":  boon.FileLoader{},
			"http":  &httpLoader,
			"https": &httpLoader,
		})
	}

	schemaURL := args[0]
	start := time.Now()
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("schema %s: %w", schemaURL, err)
	}
	log.Debug("schema compiled", "url", schemaURL, "draft", sch.DraftVersion(), "took", time.Since(start))

	invalid := 0
	for _, instanceFile := range args[1:] {
		instance, err := readInstance(instanceFile)
		if err != nil {
			return err
		}

		start = time.Now()
		result, err := sch.Validate(instance)
		if err != nil {
			return fmt.Errorf("%s: %w", instanceFile, err)
		}
		log.Debug("instance validated", "file", instanceFile, "valid", result.IsValid(), "took", time.Since(start))

		var out any
		switch cfg.output {
		case "flag":
			out = result.ToFlag()
		case "basic":
			out = result.ToList(false)
		case "detailed":
			out = result.ToList()
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", instanceFile, data)

		if !result.IsValid() {
			invalid++
		}
	}

	if invalid > 0 {
		return &invalidInstanceError{invalid}
	}
	return nil
}

func readInstance(file string) (any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		var instance any
		if err := yaml.Unmarshal(data, &instance); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return instance, nil
	default:
		instance, err := boon.UnmarshalJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return instance, nil
	}
}
