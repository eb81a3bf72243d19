package component

// FeedbackLabel is the floating "+N" text shown where a mineral was caught.
type FeedbackLabel struct {
	Text     string
	Position Position
	Opacity  float64
}
