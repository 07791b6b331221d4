package remote

import (
	"errors"

	"github.com/contactrouting/cgr/contact"
)

// Sentinel errors returned by Subscriber.
var (
	// ErrSubscribe indicates the underlying NATS subscription could not
	// be established.
	ErrSubscribe = errors.New("remote: subscribe failed")

	// ErrDecode indicates a message payload could not be decoded into a
	// ContactWindow. A decode failure drops the single message; it never
	// tears down the subscription.
	ErrDecode = errors.New("remote: decode failed")
)

// defaultSubject is the NATS subject Subscriber listens on absent an
// explicit WithSubject option.
const defaultSubject = "cgr.contacts.window"

// ContactWindow is the JSON wire shape a remote publisher sends, one
// message per contact window. Field names mirror the textual exchange
// format's column names (see package loader) so the same contact data
// can move over either channel without semantic drift.
type ContactWindow struct {
	ID            int     `json:"id"`
	From          int     `json:"from"`
	To            int     `json:"to"`
	TStart        float64 `json:"t_start"`
	TEnd          float64 `json:"t_end"`
	OWLT          float64 `json:"owlt"`
	RateBPS       float64 `json:"rate_bps"`
	SetupS        float64 `json:"setup_s"`
	ResidualBytes float64 `json:"residual_bytes"`
}

// toContact converts w into a contact.Contact.
func (w ContactWindow) toContact() contact.Contact {
	return contact.Contact{
		ID:            w.ID,
		From:          w.From,
		To:            w.To,
		TStart:        w.TStart,
		TEnd:          w.TEnd,
		OWLT:          w.OWLT,
		RateBPS:       w.RateBPS,
		SetupS:        w.SetupS,
		ResidualBytes: w.ResidualBytes,
	}
}

// Options configures a Subscriber.
type Options struct {
	Subject string
}

// Option is a functional option for configuring a Subscriber.
type Option func(*Options)

// WithSubject overrides the NATS subject a Subscriber listens on.
func WithSubject(subject string) Option {
	return func(o *Options) {
		if subject != "" {
			o.Subject = subject
		}
	}
}

// defaultOptions returns the default Subscriber configuration.
func defaultOptions() Options {
	return Options{Subject: defaultSubject}
}
