package xlog_test

import (
	"testing"

	"github.com/contactrouting/cgr/internal/xlog"
	"github.com/stretchr/testify/assert"
)

func TestNew_StampsDistinctRunIDPerLogger(t *testing.T) {
	a := xlog.New("info")
	b := xlog.New("info")

	assert.NotEmpty(t, a.RunID())
	assert.NotEmpty(t, b.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestLogger_NilReceiverMethodsNeverPanic(t *testing.T) {
	var l *xlog.Logger

	assert.NotPanics(t, func() {
		l.Debugf("x")
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
		l.WithField("k", "v")
	})
	assert.Equal(t, "", l.RunID())
}
