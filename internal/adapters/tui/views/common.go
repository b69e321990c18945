package views

// SwitchToHelpMsg asks the app to show the help view.
type SwitchToHelpMsg struct{}

// SwitchToWorkspaceMsg asks the app to return to the workspace view.
type SwitchToWorkspaceMsg struct{}

// VaultReloadedMsg announces that the vault listing changed on disk.
type VaultReloadedMsg struct{}
