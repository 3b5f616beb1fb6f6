package verification

type SubmitRequest struct {
	DocumentType string `json:"document_type" binding:"required,oneof=passport id_card driving_license utility_bill"`
	DocumentURL  string `json:"document_url" binding:"required,url"`
}
