package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/contactrouting/cgr/contact"
)

// ErrNoContacts indicates a source produced zero parseable contact lines.
var ErrNoContacts = errors.New("loader: no contacts parsed")

// ErrFileOpen wraps a failure to open a contact file.
var ErrFileOpen = errors.New("loader: could not open file")

// ReadContacts reads textual-exchange-format lines from r until EOF,
// skipping comments, blank lines, and malformed lines per ParseLine, and
// returns every successfully parsed Contact in file order.
//
// Returns ErrNoContacts if r produced no parseable lines at all; an
// empty but otherwise valid source is indistinguishable from a source
// whose every line was malformed, and both are treated the same way by
// callers (a data-load failure, not a feasible empty catalog).
func ReadContacts(r io.Reader) ([]contact.Contact, error) {
	var out []contact.Contact

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		out = append(out, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: scanning contacts: %w", err)
	}

	if len(out) == 0 {
		return nil, ErrNoContacts
	}

	return out, nil
}

// LoadFile opens path and parses its contents with ReadContacts.
func LoadFile(path string) ([]contact.Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err)
	}
	defer f.Close()

	return ReadContacts(f)
}
