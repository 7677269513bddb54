// Package seqio reads sequence text files and writes translated
// proteins.
package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("seqio")

// ErrInputNotFound is returned when the input file doesn't exist.
var ErrInputNotFound = errors.New("does not exist")

// ReadContents returns the whole file content as a string.
func ReadContents(fn string) (string, error) {
	b, err := os.ReadFile(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s %w", fn, ErrInputNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", fn, err)
	}
	log.Debugf("read %d bytes from %s", len(b), fn)
	return string(b), nil
}

// WriteSymbols writes symbols to the file without any delimiters. The
// file is created or truncated.
func WriteSymbols(fn string, symbols string) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", fn, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", fn, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = w.WriteString(symbols); err != nil {
		return fmt.Errorf("error writing to %s: %w", fn, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("error writing to %s: %w", fn, err)
	}
	log.Debugf("wrote %d symbols to %s", len(symbols), fn)
	return nil
}
