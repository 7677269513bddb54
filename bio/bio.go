// Package bio provides functions related to the genetic code.
package bio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("bio")

// Stop is the symbol the genetic code assigns to stop codons. It never
// appears in a translated protein.
const Stop = '_'

// alphabet is the RNA alphabet in the conventional table order.
var alphabet = [...]byte{'U', 'C', 'A', 'G'}

var (
	// geneticCode is the standard genetic code. Codon string (capital
	// letters, RNA alphabet) is the key, amino acids (capital letter)
	// are values. It is never modified after initialization.
	geneticCode = map[string]byte{
		"AUA": 'I', "AUC": 'I', "AUU": 'I', "AUG": 'M',
		"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACU": 'T',
		"AAC": 'N', "AAU": 'N', "AAA": 'K', "AAG": 'K',
		"AGC": 'S', "AGU": 'S', "AGA": 'R', "AGG": 'R',
		"CUA": 'L', "CUC": 'L', "CUG": 'L', "CUU": 'L',
		"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCU": 'P',
		"CAC": 'H', "CAU": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGU": 'R',
		"GUA": 'V', "GUC": 'V', "GUG": 'V', "GUU": 'V',
		"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCU": 'A',
		"GAC": 'D', "GAU": 'D', "GAA": 'E', "GAG": 'E',
		"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGU": 'G',
		"UCA": 'S', "UCC": 'S', "UCG": 'S', "UCU": 'S',
		"UUC": 'F', "UUU": 'F', "UUA": 'L', "UUG": 'L',
		"UAC": 'Y', "UAU": 'Y', "UAA": Stop, "UAG": Stop,
		"UGC": 'C', "UGU": 'C', "UGA": Stop, "UGG": 'W'}
	// allCodons lists all the codons in U, C, A, G order.
	allCodons []string
)

func init() {
	allCodons = make([]string, 0, len(geneticCode))
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				allCodons = append(allCodons, string([]byte{a, b, c}))
			}
		}
	}
}

// ErrUnknownCodon is matched by every UnknownCodonError.
var ErrUnknownCodon = errors.New("unknown codon")

// UnknownCodonError is returned when a codon is not in the genetic
// code, e.g. a truncated final codon or an unexpected letter.
type UnknownCodonError struct {
	Codon string
	// Index is the codon position in the translated sequence, -1 if
	// unknown.
	Index int
}

func (e *UnknownCodonError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("unknown codon %q", e.Codon)
	}
	return fmt.Sprintf("unknown codon %q at codon %d", e.Codon, e.Index)
}

// Is makes errors.Is(err, ErrUnknownCodon) true.
func (e *UnknownCodonError) Is(target error) bool {
	return target == ErrUnknownCodon
}

// Codons returns all 64 codons of the genetic code in U, C, A, G
// order. The returned slice is a copy.
func Codons() []string {
	return append([]string(nil), allCodons...)
}

// Lookup returns the amino acid encoded by the codon, or Stop for
// stop-codons.
func Lookup(codon string) (byte, error) {
	aa, ok := geneticCode[codon]
	if !ok {
		return 0, &UnknownCodonError{Codon: codon, Index: -1}
	}
	return aa, nil
}

// IsStopCodon tests if the string is a stop-codon (RNA alphabet,
// capital letters).
func IsStopCodon(codon string) bool {
	return geneticCode[codon] == Stop
}

// Translate translates a list of codons into the protein string.
// Translation ends at the first stop-codon, which is not included in
// the protein; the codons after it are ignored. If an unknown codon is
// encountered, the protein translated so far is returned together
// with an UnknownCodonError.
func Translate(codons []string) (string, error) {
	var b strings.Builder
	b.Grow(len(codons))

	for i, codon := range codons {
		aa, err := Lookup(codon)
		if err != nil {
			return b.String(), &UnknownCodonError{Codon: codon, Index: i}
		}
		if aa == Stop {
			log.Debugf("stop codon %s at codon %d, skipping %d codons", codon, i, len(codons)-i-1)
			break
		}
		b.WriteByte(aa)
	}
	return b.String(), nil
}
