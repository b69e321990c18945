package ports

// NoteOpener opens a vault-relative file in some surface outside the
// engine, the running Obsidian instance or a local editor.
type NoteOpener interface {
	// OpenFile opens the file; newPane asks the surface for a new pane
	// where it supports one.
	OpenFile(relPath string, newPane bool) error
}
