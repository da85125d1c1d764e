// Command screen runs a CSV of intake answers through the eligibility engine
// and prints a JSON screening report.
//
//	screen -in intakes.csv [-out report.json] [-catalog catalog.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/handlers"
	"visa-eligibility-engine/internal/utils"
)

func main() {
	in := flag.String("in", "-", "intake CSV file, or - for stdin")
	out := flag.String("out", "-", "report file, or - for stdout")
	catalogPath := flag.String("catalog", "", "catalog JSON file (overrides CATALOG_SOURCE)")
	flag.Parse()

	if err := run(*in, *out, *catalogPath); err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, catalogPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if catalogPath != "" {
		cfg.CatalogSource = config.CatalogSourceFile
		cfg.CatalogPath = catalogPath
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	defer utils.Sync()

	rt, err := handlers.Bootstrap(context.Background(), cfg, nil)
	if err != nil {
		return err
	}
	defer rt.Close()

	reader, closeIn, err := openInput(in)
	if err != nil {
		return err
	}
	defer closeIn()

	rows, parseErrors := utils.NewCSVParser().ParseIntakes(reader)
	for _, perr := range parseErrors {
		utils.GetLogger().Warn("Skipped intake row", zap.Error(perr))
	}

	report := handlers.BuildReport(rt.Engine, uuid.NewString(), rows, parseErrors)

	writer, err := openOutput(out)
	if err != nil {
		return err
	}
	return writeReport(writer, report)
}

// writeReport encodes the report and closes w, returning the first error.
func writeReport(w io.WriteCloser, report handlers.ScreeningReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open intake file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, nil
}

// nopWriteCloser keeps stdout open after the report is written.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
