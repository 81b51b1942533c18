package app

import "time"

// Layout constants define the default dimensions and spacing for the UI
const (
	// FooterRows is the number of rows reserved for the status and help lines.
	FooterRows = 2
)

// Rendering constants control render timing
const (
	// PreviewDebounce is the delay between the last edit and the preview
	// render. Edits inside the window supersede the pending render.
	PreviewDebounce = 200 * time.Millisecond

	// DraftAutoSaveInterval controls how often the editor text is written to
	// the draft file.
	DraftAutoSaveInterval = 5 * time.Second
)
