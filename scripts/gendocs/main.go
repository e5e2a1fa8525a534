// Package main generates the semantic-layer reference: every vocabulary
// enumeration and the record decoder options.
//
// Usage:
//
//	go run ./scripts/gendocs
//	go run ./scripts/gendocs -format=text -out=-
//
// Settings are read from dbtgooddata.yaml in the project root, if present.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/dbtgooddata/internal/config"
	"github.com/leapstack-labs/dbtgooddata/internal/docs"
)

var (
	formatFlag = flag.String("format", "markdown", "output format: text, markdown")
	outFlag    = flag.String("out", "", "output file, - for stdout (defaults to docs/reference.md)")
)

func main() {
	flag.Parse()

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}

	if err := run(projectRoot, *outFlag, *formatFlag, os.Stdout); err != nil {
		log.Fatalf("failed to generate reference: %v", err)
	}
}

// run loads the project config and writes the reference to out, or to
// stdout when out is "-".
func run(projectRoot, out, formatName string, stdout io.Writer) error {
	cfg, err := config.LoadFromDir(projectRoot)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	format, err := docs.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if out == "-" {
		return generate(stdout, cfg, format)
	}
	if out == "" {
		out = filepath.Join(projectRoot, "docs", "reference.md")
	}

	if err := os.MkdirAll(filepath.Dir(out), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(out) //nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer func() { _ = f.Close() }()

	if err := generate(f, cfg, format); err != nil {
		return err
	}
	logger.Info("generated reference", "path", out, "format", string(format))
	return f.Close()
}

// generate writes the vocabulary tables followed by the decoder options.
func generate(w io.Writer, cfg *config.Config, format docs.Format) error {
	if format == docs.FormatMarkdown {
		if _, err := fmt.Fprintf(w, "# Semantic Layer Reference\n\n<!-- Code generated by scripts/gendocs. DO NOT EDIT. -->\n\n"); err != nil {
			return err
		}
	}
	if err := docs.WriteVocabulary(w, format); err != nil {
		return fmt.Errorf("failed to write vocabulary: %w", err)
	}
	opts := cfg.Decode
	if err := docs.WriteRecord(w, "Decode Options", &opts, format); err != nil {
		return fmt.Errorf("failed to write decode options: %w", err)
	}
	return nil
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
