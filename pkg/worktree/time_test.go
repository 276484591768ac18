//go:build unit

package worktree

import (
	"testing"
	"time"
)

// referenceTime returns Go's reference timestamp, Jan 2 15:04:05 2006.
func referenceTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2006-01-02T15:04:05Z")
	if err != nil {
		t.Fatal(err)
	}
	return ts
}
