// Package forge resolves repository metadata from hosting services.
package forge

//go:generate go run go.uber.org/mock/mockgen@latest -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// SupportsHost reports whether the forge can answer for the given host.
	SupportsHost(host string) bool

	// DefaultBranch fetches the repository's default branch from the forge API.
	DefaultBranch(owner, name string) (string, error)
}

// Manager selects the forge implementation for a repository host.
type Manager interface {
	// ForgeForHost returns the forge for the given host, or ErrUnsupportedForge.
	ForgeForHost(host string) (Forge, error)
}

type realManager struct {
	forges []Forge
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager() Manager {
	return &realManager{
		forges: []Forge{NewGitHub()},
	}
}

// ForgeForHost returns the forge for the given host, or ErrUnsupportedForge.
func (m *realManager) ForgeForHost(host string) (Forge, error) {
	for _, f := range m.forges {
		if f.SupportsHost(host) {
			return f, nil
		}
	}
	return nil, ErrUnsupportedForge
}
