package resolver

import "tabnav/internal/ports"

// DefaultProbers returns the element-resolver chain for the host
// versions currently supported, ordered by confidence. Each prober
// reads one host-internal property shape; host-version drift is
// absorbed by editing this list.
func DefaultProbers() []ports.ElementFileResolver {
	return []ports.ElementFileResolver{
		internalKeyResolver{key: "file"},
		internalKeyResolver{key: "dataFile"},
		internalKeyResolver{key: "path"},
	}
}

// internalKeyResolver probes a single host-internal property and
// accepts the value shapes the host is known to attach: a bare path
// string, a file handle, or an untyped object carrying a "path" field.
type internalKeyResolver struct {
	key string
}

func (p internalKeyResolver) Name() string { return "internal:" + p.key }

func (p internalKeyResolver) FileFor(el ports.Element) (string, bool) {
	v, ok := el.Internal(p.key)
	if !ok || v == nil {
		return "", false
	}
	return pathFromRef(v)
}

func pathFromRef(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if t != "" {
			return t, true
		}
	case ports.VaultFile:
		if t.Path != "" {
			return t.Path, true
		}
	case *ports.VaultFile:
		if t != nil && t.Path != "" {
			return t.Path, true
		}
	case map[string]any:
		if path, ok := t["path"].(string); ok && path != "" {
			return path, true
		}
	}
	return "", false
}
