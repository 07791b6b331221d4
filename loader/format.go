package loader

import (
	"strconv"
	"strings"

	"github.com/contactrouting/cgr/contact"
)

// fieldCount is the number of comma-separated fields a valid line carries:
// id,from,to,t_start,t_end,owlt,rate_bps,setup_s,residual_bytes.
const fieldCount = 9

// ParseLine parses a single textual-exchange-format line into a Contact.
// ok is false if line is blank, a `#` comment, or does not parse into
// exactly fieldCount well-formed fields — callers skip such lines rather
// than treating them as an error, per the format's silent-skip contract.
func ParseLine(line string) (c contact.Contact, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return contact.Contact{}, false
	}

	fields := strings.Split(trimmed, ",")
	if len(fields) != fieldCount {
		return contact.Contact{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return contact.Contact{}, false
	}
	from, err := strconv.Atoi(fields[1])
	if err != nil {
		return contact.Contact{}, false
	}
	to, err := strconv.Atoi(fields[2])
	if err != nil {
		return contact.Contact{}, false
	}
	tStart, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return contact.Contact{}, false
	}
	tEnd, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return contact.Contact{}, false
	}
	owlt, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return contact.Contact{}, false
	}
	rate, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return contact.Contact{}, false
	}
	setup, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return contact.Contact{}, false
	}
	residual, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return contact.Contact{}, false
	}

	return contact.Contact{
		ID:            id,
		From:          from,
		To:            to,
		TStart:        tStart,
		TEnd:          tEnd,
		OWLT:          owlt,
		RateBPS:       rate,
		SetupS:        setup,
		ResidualBytes: residual,
	}, true
}

// FormatLine renders c in textual exchange format, the inverse of
// ParseLine. Floats use %g to round-trip through ParseLine without
// precision loss for any value a contact set realistically carries.
func FormatLine(c contact.Contact) string {
	return strings.Join([]string{
		strconv.Itoa(c.ID),
		strconv.Itoa(c.From),
		strconv.Itoa(c.To),
		strconv.FormatFloat(c.TStart, 'g', -1, 64),
		strconv.FormatFloat(c.TEnd, 'g', -1, 64),
		strconv.FormatFloat(c.OWLT, 'g', -1, 64),
		strconv.FormatFloat(c.RateBPS, 'g', -1, 64),
		strconv.FormatFloat(c.SetupS, 'g', -1, 64),
		strconv.FormatFloat(c.ResidualBytes, 'g', -1, 64),
	}, ",")
}
