package views

// ViewState is embedded by every view model
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

func (s *ViewState) SetSize(width, height int) {
	s.Width, s.Height = width, height
}

// SetMessage shows a one-line status below the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message, s.MessageErr = msg, isErr
}

// Messages exchanged between views and the app
type (
	SwitchToReviewMsg struct{}
	SwitchToHelpMsg   struct{}

	// OpenEditorMsg asks the app to open Path in the editor
	OpenEditorMsg struct{ Path string }

	// CommitPlanMsg confirms the reviewed plan
	CommitPlanMsg struct{}

	// CancelPlanMsg discards the plan and quits
	CancelPlanMsg struct{}
)
