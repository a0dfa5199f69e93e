package dto

// ChatRequest represents a question sent to the budgeting coach
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatResponse carries the coach's reply and where it came from
type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}
