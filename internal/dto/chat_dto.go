package dto

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string   `json:"response"`
	Options  []string `json:"options,omitempty"`
}
