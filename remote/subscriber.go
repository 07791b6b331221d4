package remote

import (
	"encoding/json"
	"fmt"

	"github.com/contactrouting/cgr/contact"
	"github.com/contactrouting/cgr/internal/xlog"
	"github.com/nats-io/nats.go"
)

// Msg is the minimal shape Subscriber needs from a received NATS
// message; *nats.Msg is adapted to it by natsMsg.
type Msg interface {
	Data() []byte
}

// natsMsg adapts *nats.Msg to Msg.
type natsMsg struct{ m *nats.Msg }

func (n natsMsg) Data() []byte { return n.m.Data }

// Conn is the subset of *nats.Conn a Subscriber depends on. Narrowing
// the dependency to an interface lets tests exercise Subscriber's
// decode/dispatch logic against a fake, since nats.go has no in-memory
// broker of its own.
type Conn interface {
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
	Drain() error
}

// Subscriber listens on a NATS subject for JSON-encoded ContactWindow
// messages and forwards each successfully decoded one to a sink.
type Subscriber struct {
	conn    Conn
	opts    Options
	log     *xlog.Logger
	sub     *nats.Subscription
	decoded int
	dropped int
}

// NewSubscriber constructs a Subscriber over conn, which the caller is
// responsible for connecting and eventually closing.
func NewSubscriber(conn Conn, log *xlog.Logger, opts ...Option) *Subscriber {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Subscriber{conn: conn, opts: o, log: log}
}

// Start subscribes to the configured subject; every decodable message is
// converted to a contact.Contact and passed to sink. Decode failures are
// logged and skipped, never propagated to the caller.
func (s *Subscriber) Start(sink func(contact.Contact)) error {
	sub, err := s.conn.Subscribe(s.opts.Subject, func(m *nats.Msg) {
		s.handle(natsMsg{m}, sink)
	})
	if err != nil {
		return fmt.Errorf("%w: subject %s: %v", ErrSubscribe, s.opts.Subject, err)
	}
	s.sub = sub
	return nil
}

// Stop drains the underlying connection, flushing any in-flight
// messages before returning.
func (s *Subscriber) Stop() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Drain()
}

// Stats reports how many messages this Subscriber has decoded and
// dropped since Start.
func (s *Subscriber) Stats() (decoded, dropped int) {
	return s.decoded, s.dropped
}

func (s *Subscriber) handle(m Msg, sink func(contact.Contact)) {
	var w ContactWindow
	if err := json.Unmarshal(m.Data(), &w); err != nil {
		s.dropped++
		if s.log != nil {
			s.log.Warnf("%v: %v", ErrDecode, err)
		}
		return
	}
	s.decoded++
	sink(w.toContact())
}
