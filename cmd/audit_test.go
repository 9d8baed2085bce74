package cmd

import (
	"path/filepath"
	"testing"

	"github.com/classkit/rollcall/config/auditlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) auditlog.Logger {
	t.Helper()
	logger, err := auditlog.NewSQLiteLogger(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger
}

func TestExecuteAuditList_FormatsEvents(t *testing.T) {
	logger := testLogger(t)
	logger.Emit(auditlog.NewEvent(auditlog.EventPersonAdded, "homeroom", "added Ana Marques",
		auditlog.WithPerson("p1", "Ana Marques"), auditlog.WithSource("ui")))
	logger.Emit(auditlog.NewEvent(auditlog.EventGroupCreated, "homeroom", "created group Class A",
		auditlog.WithGroup("Class A"), auditlog.WithSource("ui")))

	out := ExecuteAuditList(logger, auditlog.QueryFilter{Project: "homeroom"})

	assert.Contains(t, out, "person_added")
	assert.Contains(t, out, "Ana Marques")
	assert.Contains(t, out, "group_created")
	assert.Contains(t, out, "Class A")
}

func TestExecuteAuditList_KindFilter(t *testing.T) {
	logger := testLogger(t)
	logger.Emit(auditlog.NewEvent(auditlog.EventPersonAdded, "homeroom", "added Ana"))
	logger.Emit(auditlog.NewEvent(auditlog.EventSyncCompleted, "homeroom", "1 downloaded"))

	out := ExecuteAuditList(logger, auditlog.QueryFilter{
		Kinds: ParseAuditKinds("sync_completed"),
	})

	assert.Contains(t, out, "sync_completed")
	assert.NotContains(t, out, "person_added")
}

func TestExecuteAuditList_Empty(t *testing.T) {
	logger := testLogger(t)
	assert.Equal(t, "no audit events\n", ExecuteAuditList(logger, auditlog.QueryFilter{}))
}

func TestParseAuditKinds(t *testing.T) {
	assert.Nil(t, ParseAuditKinds(""))
	assert.Equal(t,
		[]auditlog.EventKind{auditlog.EventPersonAdded, auditlog.EventSyncFailed},
		ParseAuditKinds("person_added, sync_failed"))
}
