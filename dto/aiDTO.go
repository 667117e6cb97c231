package dto

type DraftTaskRequest struct {
	// Prompt carries the user's instruction, typed or a dictation
	// transcript; both arrive through the same field.
	Prompt string `json:"prompt" binding:"required"`
}

type SuggestSubtasksRequest struct {
	Title string `json:"title" binding:"required"`
}

type SuggestSubtasksResponse struct {
	Subtasks []string `json:"subtasks"`
}
