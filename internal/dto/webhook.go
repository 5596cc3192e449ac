package dto

// WebhookRequestDTO documents the gateway payload; the handler reads the raw
// body so the signature can be checked byte for byte.
type WebhookRequestDTO struct {
	PaymentID string `json:"paymentId" example:"abc123"`
	Amount    string `json:"amount" example:"10.50"`
	Status    string `json:"status,omitempty" example:"CONFIRMED"`
}

type WebhookResponseDTO struct {
	OK        bool `json:"ok" example:"true"`
	Duplicate bool `json:"duplicate,omitempty" example:"false"`
}
