// Package fs provides file-based input and output for tenderscan.
package fs

import (
	"bufio"
	"io"
	"os"

	"github.com/fwojciec/tenderscan"
)

// DefaultLimit is the number of input lines considered by default.
const DefaultLimit = 5000

// ReadIdentifiers reads newline-delimited identifiers from r. Only the first
// limit lines are considered; a limit of zero or less reads everything.
// Lines are trimmed and blank lines are skipped.
func ReadIdentifiers(r io.Reader, limit int) ([]tenderscan.Identifier, error) {
	var ids []tenderscan.Identifier

	scanner := bufio.NewScanner(r)
	for n := 0; scanner.Scan(); n++ {
		if limit > 0 && n >= limit {
			break
		}
		id, err := tenderscan.ParseIdentifier(scanner.Text())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// OpenIdentifiers reads identifiers from the file at path.
func OpenIdentifiers(path string, limit int) ([]tenderscan.Identifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadIdentifiers(f, limit)
}
