// Package pipeline reads a DNA sequence, translates it to a protein
// and writes the protein.
package pipeline

import (
	"fmt"
	"time"

	"github.com/op/go-logging"

	"bitbucket.org/protrans/protrans/bio"
	"bitbucket.org/protrans/protrans/journal"
	"bitbucket.org/protrans/protrans/seqio"
)

var log = logging.MustGetLogger("pipeline")

// Config stores settings for a single translation run.
type Config struct {
	// Input is the DNA text file name.
	Input string
	// Output is the protein file name.
	Output string
	// Journal stores finished translations, can be nil.
	Journal *journal.Journal
}

// Result is the translation outcome.
type Result struct {
	// Protein is the translated protein without the stop codon.
	Protein string
	// Length is the normalized sequence length.
	Length int
	// Codons is the number of codons (including the incomplete last
	// one) in the sequence.
	Codons int
	// Stopped is true if translation ended at a stop codon.
	Stopped bool
	// Key is the journal key of the normalized sequence.
	Key string
	// Cached is true if the protein was taken from the journal.
	Cached bool
}

// Translate normalizes the DNA text, splits it into codons and
// translates them.
func Translate(contents string) (*Result, error) {
	return translateSeq(bio.Normalize(contents))
}

// translateSeq translates a normalized sequence.
func translateSeq(seq string) (*Result, error) {
	codons, err := bio.Chunk(seq, bio.CodonLength)
	if err != nil {
		return nil, err
	}
	log.Debugf("sequence of %d nucleotides, %d codons", len(seq), len(codons))

	protein, err := bio.Translate(codons)
	if err != nil {
		return nil, err
	}

	return &Result{
		Protein: protein,
		Length:  len(seq),
		Codons:  len(codons),
		// every codon before the stop codon is translated
		Stopped: len(protein) < len(codons) && bio.IsStopCodon(codons[len(protein)]),
		Key:     journal.Key(seq),
	}, nil
}

// Run reads the input, translates it and writes the protein to the
// output. Nothing is written if the translation fails.
func Run(cfg Config) (*Result, error) {
	contents, err := seqio.ReadContents(cfg.Input)
	if err != nil {
		return nil, err
	}

	res, err := translate(cfg.Journal, contents)
	if err != nil {
		return nil, fmt.Errorf("error translating %s: %w", cfg.Input, err)
	}

	if res.Stopped {
		log.Infof("Stop codon after %d amino acids", len(res.Protein))
	}

	if err := seqio.WriteSymbols(cfg.Output, res.Protein); err != nil {
		return nil, err
	}
	log.Infof("Wrote %d amino acids to %s", len(res.Protein), cfg.Output)

	if !res.Cached && cfg.Journal != nil {
		// the output is already written, a journal failure is not fatal
		err := cfg.Journal.Save(res.Key, &journal.Record{
			Input:   cfg.Input,
			Output:  cfg.Output,
			Protein: res.Protein,
			Codons:  res.Codons,
			Stopped: res.Stopped,
			Time:    time.Now().UTC(),
		})
		if err != nil {
			log.Warning("Couldn't save translation to the journal:", err)
		}
	}

	return res, nil
}

// translate looks the sequence up in the journal before translating
// it.
func translate(j *journal.Journal, contents string) (*Result, error) {
	seq := bio.Normalize(contents)
	if j == nil {
		return translateSeq(seq)
	}

	key := journal.Key(seq)
	rec, err := j.Load(key)
	if err != nil {
		log.Warning("Couldn't read the journal:", err)
	}
	if rec == nil {
		return translateSeq(seq)
	}

	log.Noticef("Found finished translation of %s (%d amino acids)", rec.Input, len(rec.Protein))
	return &Result{
		Protein: rec.Protein,
		Length:  len(seq),
		Codons:  rec.Codons,
		Stopped: rec.Stopped,
		Key:     key,
		Cached:  true,
	}, nil
}
