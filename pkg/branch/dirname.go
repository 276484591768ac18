// Package branch maps branch names to filesystem-safe worktree directory names.
package branch

import "strings"

// ToDirName converts a branch name to a worktree directory name by replacing
// every path separator with a hyphen. Total and deterministic, but not
// injective: "a/b" and "a-b" both map to "a-b". Callers must check for
// collisions before creating anything at the resulting path.
func ToDirName(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}

// FromDirName is the best-effort inverse of ToDirName, replacing hyphens with
// path separators. The forward mapping is lossy, so the result is advisory
// only and must never be treated as the authoritative branch name.
func FromDirName(dir string) string {
	return strings.ReplaceAll(dir, "-", "/")
}
