package feedback

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required,min=3"`
}
