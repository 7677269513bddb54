package bio

import "errors"

// CodonLength is the number of nucleotides in a codon.
const CodonLength = 3

// ErrChunkSize is returned by Chunk for a non-positive size.
var ErrChunkSize = errors.New("chunk size should be at least 1")

// Chunk splits text into substrings of size characters. The last
// substring holds the remainder and can be shorter.
func Chunk(text string, size int) ([]string, error) {
	if size < 1 {
		return nil, ErrChunkSize
	}
	chunks := make([]string, 0, (len(text)+size-1)/size)
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks, nil
}
