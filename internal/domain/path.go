package domain

import "strings"

// MarkdownExt is the default extension assumed for extension-less
// navigation targets.
const MarkdownExt = ".md"

// HasExtension reports whether the final segment of path carries a file
// extension. A leading dot (hidden file) does not count.
func HasExtension(path string) bool {
	seg := LastSegment(path)
	dot := strings.LastIndex(seg, ".")
	return dot > 0 && dot < len(seg)-1
}

// LastSegment returns the final slash-separated segment of path.
func LastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Dir returns the containing folder of a vault-relative path, or ""
// for a root-level path.
func Dir(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return ""
}

// ResolveParentHops resolves a link target containing `../` markers
// against the folder of the active document. One folder segment is
// popped per marker occurrence, clamped at the vault root: markers
// beyond the folder depth are ignored. The remainder of the target is
// re-prefixed with whatever folders survive.
func ResolveParentHops(raw, baseDir string) string {
	hops := strings.Count(raw, "../")
	if hops == 0 {
		return raw
	}
	rest := strings.ReplaceAll(raw, "../", "")

	var segs []string
	if baseDir != "" {
		segs = strings.Split(baseDir, "/")
	}
	for i := 0; i < hops && len(segs) > 0; i++ {
		segs = segs[:len(segs)-1]
	}
	if len(segs) == 0 {
		return rest
	}
	return strings.Join(segs, "/") + "/" + rest
}

// StripLinkMarkers removes the leading fragment/relative markers a raw
// wiki-link href may carry ("#", "./").
func StripLinkMarkers(s string) string {
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(s, "./")
	return s
}
