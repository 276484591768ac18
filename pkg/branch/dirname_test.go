//go:build unit

package branch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDirName(t *testing.T) {
	tests := []struct {
		branch string
		want   string
	}{
		{branch: "main", want: "main"},
		{branch: "feature/000", want: "feature-000"},
		{branch: "fix/bug-123", want: "fix-bug-123"},
		{branch: "feature/sub/deep", want: "feature-sub-deep"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDirName(tt.branch))
	}
}

func TestToDirName_NeverContainsSeparator(t *testing.T) {
	inputs := []string{"a/b/c/d/e", "/leading", "trailing/", "//", "plain"}
	for _, input := range inputs {
		assert.False(t, strings.Contains(ToDirName(input), "/"), "input %q", input)
	}
}

func TestFromDirName(t *testing.T) {
	assert.Equal(t, "feature/login", FromDirName("feature-login"))
	assert.Equal(t, "main", FromDirName("main"))
}

func TestMapping_IsLossy(t *testing.T) {
	// "a/b" and "a-b" collide on purpose; creation-time collision checks
	// are the caller's responsibility.
	assert.Equal(t, ToDirName("a/b"), ToDirName("a-b"))
	assert.Equal(t, "fix/bug/123", FromDirName(ToDirName("fix/bug-123")))
}
