// Package repourl parses repository identifiers into a canonical host/owner/name form.
package repourl

import (
	"fmt"
	"net/url"
	"strings"
)

// RepoURL is the canonical form of a repository identifier.
type RepoURL struct {
	Host  string
	Owner string
	Name  string
}

// CloneMethod selects the URL form used when rendering a RepoURL back to a clone URL.
type CloneMethod string

// Supported clone methods.
const (
	CloneMethodSSH   CloneMethod = "ssh"
	CloneMethodHTTPS CloneMethod = "https"
)

// Parse parses a repository identifier. Accepted forms:
//
//	git@host:owner/name(.git)?
//	https://host/owner/name(.git)?
//	ssh://git@host/owner/name(.git)?
//	host/owner/name(.git)?
//
// Parsing is pure: no network or filesystem access.
func Parse(input string) (RepoURL, error) {
	trimmed := strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(trimmed, "git@"):
		return parseSCPLike(trimmed, input)
	case strings.HasPrefix(trimmed, "https://"), strings.HasPrefix(trimmed, "http://"),
		strings.HasPrefix(trimmed, "ssh://"):
		return parseURL(trimmed, input)
	default:
		return parseShorthand(trimmed, input)
	}
}

// parseSCPLike parses git@host:owner/name(.git)? identifiers.
func parseSCPLike(trimmed, original string) (RepoURL, error) {
	rest := strings.TrimPrefix(trimmed, "git@")
	host, path, found := strings.Cut(rest, ":")
	if !found || host == "" {
		return RepoURL{}, fmt.Errorf("%w: %s", ErrUnrecognizedForm, original)
	}
	return splitOwnerName(host, path, original)
}

// parseURL parses https:// and ssh:// identifiers.
func parseURL(trimmed, original string) (RepoURL, error) {
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return RepoURL{}, fmt.Errorf("%w: %s", ErrUnrecognizedForm, original)
	}
	path := strings.TrimPrefix(parsed.Path, "/")
	return splitOwnerName(parsed.Hostname(), path, original)
}

// parseShorthand parses host/owner/name identifiers.
func parseShorthand(trimmed, original string) (RepoURL, error) {
	path := strings.TrimSuffix(trimmed, ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 3 {
		return RepoURL{}, fmt.Errorf("%w: %s", ErrUnrecognizedForm, original)
	}
	return validated(RepoURL{Host: parts[0], Owner: parts[1], Name: parts[2]}, original)
}

// splitOwnerName splits an owner/name path and assembles the result.
func splitOwnerName(host, path, original string) (RepoURL, error) {
	path = strings.TrimSuffix(path, ".git")
	owner, name, found := strings.Cut(path, "/")
	if !found {
		return RepoURL{}, fmt.Errorf("%w: %s", ErrUnrecognizedForm, original)
	}
	return validated(RepoURL{Host: host, Owner: owner, Name: name}, original)
}

// validated rejects results with empty or unsafe components.
func validated(r RepoURL, original string) (RepoURL, error) {
	for _, field := range []string{r.Host, r.Owner, r.Name} {
		if field == "" || strings.ContainsAny(field, "/\\ \t\n") {
			return RepoURL{}, fmt.Errorf("%w: %s", ErrUnrecognizedForm, original)
		}
	}
	return r, nil
}

// SSHURL renders the SSH clone URL.
func (r RepoURL) SSHURL() string {
	return fmt.Sprintf("git@%s:%s/%s.git", r.Host, r.Owner, r.Name)
}

// HTTPSURL renders the HTTPS clone URL.
func (r RepoURL) HTTPSURL() string {
	return fmt.Sprintf("https://%s/%s/%s.git", r.Host, r.Owner, r.Name)
}

// CloneURL renders the clone URL for the given method. SSH is the default.
func (r RepoURL) CloneURL(method CloneMethod) string {
	if method == CloneMethodHTTPS {
		return r.HTTPSURL()
	}
	return r.SSHURL()
}

// LocalPath renders the host/owner/name relative path used under the repositories root.
func (r RepoURL) LocalPath() string {
	return fmt.Sprintf("%s/%s/%s", r.Host, r.Owner, r.Name)
}

// String implements fmt.Stringer.
func (r RepoURL) String() string {
	return r.LocalPath()
}
