package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bitbucket.org/protrans/protrans/seqio"
)

func TestRun(tst *testing.T) {
	dir := tst.TempDir()
	in := filepath.Join(dir, "dna.txt")
	out := filepath.Join(dir, "protein.txt")
	if err := os.WriteFile(in, []byte("ATG GCT\nGCA TAA GGG"), 0644); err != nil {
		tst.Fatal(err)
	}

	_, err := app.Parse([]string{
		"--db", filepath.Join(dir, "journal.db"),
		"--plot", filepath.Join(dir, "composition.png"),
		in, out,
	})
	if err != nil {
		tst.Fatal("Error parsing command line:", err)
	}

	summary, err := run()
	if err != nil {
		tst.Fatal("Error:", err)
	}
	if summary.ProteinLength != 3 || summary.Codons != 5 || !summary.Stopped {
		tst.Error("Wrong summary:", summary)
	}
	if summary.Composition["A"] != 2 || summary.Composition["M"] != 1 {
		tst.Error("Wrong composition:", summary.Composition)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		tst.Fatal(err)
	}
	if string(b) != "MAA" {
		tst.Errorf("Wrong output: %q", b)
	}
	if _, err := os.Stat(filepath.Join(dir, "composition.png")); err != nil {
		tst.Error("Composition plot not written:", err)
	}

	summary, err = run()
	if err != nil {
		tst.Fatal("Error:", err)
	}
	if !summary.Cached {
		tst.Error("Second run didn't use the journal")
	}
}

func TestRunMissingInput(tst *testing.T) {
	dir := tst.TempDir()
	_, err := app.Parse([]string{filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt")})
	if err != nil {
		tst.Fatal("Error parsing command line:", err)
	}
	// flags without defaults keep values from previous parsing
	*dbF, *plotF = "", ""
	if _, err := run(); !errors.Is(err, seqio.ErrInputNotFound) {
		tst.Error("Expected input not found, got", err)
	}
}

func TestRunEmptyPlot(tst *testing.T) {
	dir := tst.TempDir()
	in := filepath.Join(dir, "dna.txt")
	out := filepath.Join(dir, "protein.txt")
	plotFn := filepath.Join(dir, "composition.png")
	if err := os.WriteFile(in, nil, 0644); err != nil {
		tst.Fatal(err)
	}
	_, err := app.Parse([]string{"--plot", plotFn, in, out})
	if err != nil {
		tst.Fatal("Error parsing command line:", err)
	}
	*dbF = ""

	summary, err := run()
	if err != nil {
		tst.Fatal("Error:", err)
	}
	if summary.ProteinLength != 0 || len(summary.Composition) != 0 {
		tst.Error("Wrong summary:", summary)
	}
	if _, err := os.Stat(plotFn); !os.IsNotExist(err) {
		tst.Error("Composition plotted for an empty protein")
	}
}

func TestWriteJSON(tst *testing.T) {
	dir := tst.TempDir()
	fn := filepath.Join(dir, "summary.json")
	summary := &RunSummary{Input: "dna.txt", ProteinLength: 2, Composition: map[string]int{"M": 1, "A": 1}}
	if err := writeJSON(summary, fn); err != nil {
		tst.Fatal("Error writing json:", err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		tst.Fatal(err)
	}
	var read RunSummary
	if err := json.Unmarshal(b, &read); err != nil {
		tst.Fatal("Error reading json:", err)
	}
	if read.Input != "dna.txt" || read.ProteinLength != 2 || read.Composition["M"] != 1 {
		tst.Error("Wrong summary read:", read)
	}

	if err := writeJSON(summary, filepath.Join(dir, "nodir", "summary.json")); err == nil {
		tst.Error("No error writing to a missing directory")
	}
}
