package domain

// Suggestion is the best-effort (title, description, category) triple produced
// by the vision model for an uploaded image. It is advisory only: a nil
// suggestion is a normal outcome, never an error.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
