package ports

// VaultFile is one entry of the host vault's file listing.
type VaultFile struct {
	Path     string // vault-relative, forward slashes
	Name     string // final path segment, extension included
	Basename string // Name without its extension
}

// Vault exposes the host vault's flat file listing. The engine keeps
// no index of its own: every lookup is a linear scan over Files, so
// implementations should return a stable (lexicographic) order to keep
// first-match resolution deterministic.
type Vault interface {
	Files() []VaultFile
}

// ElementFileResolver recovers a file identity from a rendered UI
// element using one known host-internal object shape. Implementations
// are best-effort and ordered by confidence; host-version drift is
// absorbed here rather than in callers.
type ElementFileResolver interface {
	Name() string
	FileFor(el Element) (path string, ok bool)
}
