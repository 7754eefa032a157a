package models

type InitiateDepositParams struct {
	AmountKobo int64 `json:"amount_kobo" binding:"required,gt=0"`
}

type SubmitKYCParams struct {
	BusinessName string `json:"business_name" binding:"required"`
	RCNumber     string `json:"rc_number" binding:"required"`
	DocumentKey  string `json:"document_key" binding:"required"`
}

type ReviewKYCParams struct {
	UserID   int64  `json:"user_id" binding:"required"`
	Decision string `json:"decision" binding:"required,oneof=APPROVED REJECTED"`
}

type PresignUploadParams struct {
	ContentType string `json:"content_type" binding:"required"`
}
