/*

Protrans translates a DNA sequence into a protein using the standard
genetic code.

The basic usage of protrans looks like this:

	protrans dna.txt protein.txt

, this will read the DNA sequence from dna.txt and write the protein
to protein.txt. Spaces and line breaks in the input are ignored,
translation ends at the first stop codon.

Finished translations can be stored in a journal, and the amino acid
composition can be plotted:

	protrans --db journal.db --plot composition.png dna.txt protein.txt

To see all the options run:

	protrans --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/protrans/protrans/composition"
	"bitbucket.org/protrans/protrans/journal"
	"bitbucket.org/protrans/protrans/pipeline"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("protrans")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("protrans", "DNA to protein translator").Version(version)

	// input and output
	inputFileName  = app.Arg("input", "DNA sequence file").Required().String()
	outputFileName = app.Arg("output", "protein output file").Required().String()

	// technical
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
	dbF   = app.Flag("db", "journal database with finished translations").String()
	plotF = app.Flag("plot", "plot amino acid composition to a file (png, svg, pdf)").String()
)

// setupLogging sets formatter, backend and level for all the loggers.
// The returned function closes the log file.
func setupLogging() (func(), error) {
	logging.SetFormatter(formatter)

	closer := func() {}
	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return closer, fmt.Errorf("error creating log file: %w", err)
		}
		closer = func() { f.Close() }
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		return closer, err
	}
	for _, module := range []string{"protrans", "pipeline", "bio", "seqio", "journal"} {
		logging.SetLevel(level, module)
	}
	return closer, nil
}

// run performs the translation and fills the summary.
func run() (summary *RunSummary, err error) {
	startTime := time.Now()
	summary = &RunSummary{
		Input:  *inputFileName,
		Output: *outputFileName,
	}

	var j *journal.Journal
	if *dbF != "" {
		j, err = journal.Open(*dbF)
		if err != nil {
			return nil, fmt.Errorf("error opening journal: %w", err)
		}
		defer j.Close()
		log.Infof("Using journal %s", *dbF)
	}

	res, err := pipeline.Run(pipeline.Config{
		Input:   *inputFileName,
		Output:  *outputFileName,
		Journal: j,
	})
	if err != nil {
		return nil, err
	}

	comp := composition.Count(res.Protein)
	log.Infof("Composition: %s", comp)

	if *plotF != "" {
		if comp.Total() == 0 {
			log.Notice("Empty protein, composition is not plotted")
		} else if err := composition.Plot(comp, *plotF); err != nil {
			log.Error("Error plotting composition:", err)
		}
	}

	summary.Length = res.Length
	summary.Codons = res.Codons
	summary.ProteinLength = len(res.Protein)
	summary.Stopped = res.Stopped
	summary.Cached = res.Cached
	summary.Digest = res.Key
	summary.Composition = comp.Counts()

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return summary, nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	closeLog, err := setupLogging()
	defer closeLog()
	if err != nil {
		log.Fatal(err)
	}

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	summary, err := run()
	if err != nil {
		log.Fatal(err)
	}
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		if err := writeJSON(summary, *jsonF); err != nil {
			log.Error(err)
		}
	}
}

// writeJSON writes the summary in json format to a file.
func writeJSON(summary *RunSummary, fn string) (err error) {
	j, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	log.Debug(string(j))
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("error creating json output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing json output file: %w", cerr)
		}
	}()
	if _, err = f.Write(j); err != nil {
		return fmt.Errorf("error writing json output file: %w", err)
	}
	return nil
}
