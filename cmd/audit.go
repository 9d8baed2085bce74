// Package cmd holds testable command bodies invoked from main. Keeping them
// free of cobra plumbing lets tests call them directly.
package cmd

import (
	"fmt"
	"strings"

	"github.com/classkit/rollcall/config/auditlog"
)

// ExecuteAuditList returns a formatted listing of audit events matching the
// filter, newest first.
func ExecuteAuditList(logger auditlog.Logger, filter auditlog.QueryFilter) string {
	events, err := logger.Query(filter)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if len(events) == 0 {
		return "no audit events\n"
	}

	var sb strings.Builder
	for _, e := range events {
		subject := e.PersonName
		if subject == "" {
			subject = e.GroupName
		}
		line := fmt.Sprintf("%s  %-16s %-24s %s",
			e.Timestamp.Format("2006-01-02 15:04"), e.Kind, subject, e.Message)
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return sb.String()
}

// ParseAuditKinds converts comma-separated kind names into a filter list.
// Unknown names are kept verbatim; the query simply matches nothing for them.
func ParseAuditKinds(arg string) []auditlog.EventKind {
	if arg == "" {
		return nil
	}
	var kinds []auditlog.EventKind
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			kinds = append(kinds, auditlog.EventKind(name))
		}
	}
	return kinds
}
