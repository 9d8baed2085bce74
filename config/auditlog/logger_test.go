package auditlog_test

import (
	"testing"

	"github.com/classkit/rollcall/config/auditlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	logger := auditlog.NopLogger()
	logger.Emit(auditlog.NewEvent(auditlog.EventError, "p", "ignored"))

	events, err := logger.Query(auditlog.QueryFilter{})
	require.NoError(t, err)
	assert.Nil(t, events)
	assert.NoError(t, logger.Close())
}

func TestNewEventOptions(t *testing.T) {
	e := auditlog.NewEvent(auditlog.EventGroupRenamed, "homeroom", "renamed",
		auditlog.WithGroup("7B"),
		auditlog.WithLevel("warn"),
		auditlog.WithDetail(`{"from":"7A"}`),
	)
	assert.Equal(t, "7B", e.GroupName)
	assert.Equal(t, "warn", e.Level)
	assert.Contains(t, e.Detail, "7A")
}
