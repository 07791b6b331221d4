package remote_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/contactrouting/cgr/contact"
	"github.com/contactrouting/cgr/internal/xlog"
	"github.com/contactrouting/cgr/remote"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn is an in-memory stand-in for *nats.Conn: Subscribe records
// the handler instead of talking to a broker, and deliver lets a test
// invoke it directly.
type fakeConn struct {
	subject    string
	handler    nats.MsgHandler
	subscribed bool
	drained    bool
	subscribeErr error
}

func (f *fakeConn) Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error) {
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.subject = subject
	f.handler = cb
	f.subscribed = true
	return &nats.Subscription{Subject: subject}, nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func (f *fakeConn) deliver(w remote.ContactWindow) {
	data, _ := json.Marshal(w)
	f.handler(&nats.Msg{Data: data})
}

func (f *fakeConn) deliverRaw(data []byte) {
	f.handler(&nats.Msg{Data: data})
}

func TestSubscriber_DefaultSubject(t *testing.T) {
	conn := &fakeConn{}
	sub := remote.NewSubscriber(conn, xlog.New("error"))

	require.NoError(t, sub.Start(func(contact.Contact) {}))
	assert.Equal(t, "cgr.contacts.window", conn.subject)
}

func TestSubscriber_WithSubjectOverride(t *testing.T) {
	conn := &fakeConn{}
	sub := remote.NewSubscriber(conn, xlog.New("error"), remote.WithSubject("custom.subject"))

	require.NoError(t, sub.Start(func(contact.Contact) {}))
	assert.Equal(t, "custom.subject", conn.subject)
}

func TestSubscriber_DecodesValidMessageIntoSink(t *testing.T) {
	conn := &fakeConn{}
	sub := remote.NewSubscriber(conn, xlog.New("error"))

	var got []contact.Contact
	require.NoError(t, sub.Start(func(c contact.Contact) {
		got = append(got, c)
	}))

	conn.deliver(remote.ContactWindow{
		ID: 1, From: 0, To: 1,
		TStart: 0, TEnd: 10, OWLT: 0.1,
		RateBPS: 1000, SetupS: 0, ResidualBytes: 5000,
	})

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 1000.0, got[0].RateBPS)

	decoded, dropped := sub.Stats()
	assert.Equal(t, 1, decoded)
	assert.Equal(t, 0, dropped)
}

func TestSubscriber_DropsUndecodableMessage(t *testing.T) {
	conn := &fakeConn{}
	sub := remote.NewSubscriber(conn, xlog.New("error"))

	called := false
	require.NoError(t, sub.Start(func(contact.Contact) { called = true }))

	conn.deliverRaw([]byte("not json"))

	assert.False(t, called)
	decoded, dropped := sub.Stats()
	assert.Equal(t, 0, decoded)
	assert.Equal(t, 1, dropped)
}

func TestSubscriber_StartWrapsSubscribeFailure(t *testing.T) {
	conn := &fakeConn{subscribeErr: errors.New("boom")}
	sub := remote.NewSubscriber(conn, xlog.New("error"))

	err := sub.Start(func(contact.Contact) {})
	assert.ErrorIs(t, err, remote.ErrSubscribe)
}

func TestSubscriber_StopDrainsConnection(t *testing.T) {
	conn := &fakeConn{}
	sub := remote.NewSubscriber(conn, xlog.New("error"))
	require.NoError(t, sub.Start(func(contact.Contact) {}))

	require.NoError(t, sub.Stop())
	assert.True(t, conn.drained)
}
