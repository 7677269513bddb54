package main

// RunSummary is storing protrans run summary information.
type RunSummary struct {
	// Version stores protrans version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Input is the DNA file name.
	Input string `json:"input"`
	// Output is the protein file name.
	Output string `json:"output"`
	// Digest is the SHA-256 of the normalized sequence, it is also the journal key.
	Digest string `json:"digest"`
	// Length is the normalized sequence length.
	Length int `json:"length"`
	// Codons is the number of codons in the sequence.
	Codons int `json:"codons"`
	// ProteinLength is the number of amino acids written.
	ProteinLength int `json:"proteinLength"`
	// Stopped is true if translation ended at a stop codon.
	Stopped bool `json:"stopped"`
	// Cached is true if the protein was taken from the journal.
	Cached bool `json:"cached,omitempty"`
	// Composition is the number of occurrences of every amino acid.
	Composition map[string]int `json:"composition"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
