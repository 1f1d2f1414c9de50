package localization

// RenameFoldersInput contains parameters for the folder rename routine.
// Locale overrides the host's active locale when set.
type RenameFoldersInput struct {
	Locale string
}

// RenameFoldersOutput reports what the rename routine did
type RenameFoldersOutput struct {
	// Processed is the number of compendium folders examined
	Processed int

	// Flagged is the number of folders whose original name was recorded
	// for the first time
	Flagged int

	// Renamed is the number of folders whose display name changed
	Renamed int

	// RefreshRequested is true when a UI refresh was requested after
	// the updates settled
	RefreshRequested bool
}

// TranslateLabelsInput contains parameters for the panel label routine.
// Locale overrides the host's active locale when set.
type TranslateLabelsInput struct {
	PanelID string
	Locale  string
}

// TranslateLabelsOutput reports what the label routine did
type TranslateLabelsOutput struct {
	// Labels is the panel's label list after substitution
	Labels []string

	// Replaced is the number of labels that were rewritten
	Replaced int

	// Skipped is true when the routine did not apply: wrong panel,
	// non-target locale, or no panel snapshot
	Skipped bool
}
