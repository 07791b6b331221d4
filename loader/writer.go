package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/contactrouting/cgr/contact"
)

// WriteContacts writes cs to w in textual exchange format, one
// FormatLine per contact, in slice order. It is the inverse of
// ReadContacts: ReadContacts(WriteContacts(cs)) reproduces cs
// field-for-field.
func WriteContacts(w io.Writer, cs []contact.Contact) error {
	bw := bufio.NewWriter(w)
	for _, c := range cs {
		if _, err := fmt.Fprintln(bw, FormatLine(c)); err != nil {
			return fmt.Errorf("loader: writing contact %d: %w", c.ID, err)
		}
	}
	return bw.Flush()
}
