package fiat

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type TransactionMetadata struct {
	WalletID string `json:"wallet_id"`
}

type InitializeTransactionRequest struct {
	Email       string              `json:"email"`
	Amount      int64               `json:"amount"`
	Reference   string              `json:"reference"`
	Currency    string              `json:"currency"`
	CallbackURL string              `json:"callback_url,omitempty"`
	Metadata    TransactionMetadata `json:"metadata"`
}

type InitializedTransaction struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifiedTransaction struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	GatewayResponse string `json:"gateway_response"`
}

// WebhookEvent is the shape Paystack delivers on charge events. Only the
// fields the reconciler reads are modelled; everything else is ignored.
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID        int64               `json:"id"`
	Reference string              `json:"reference"`
	Amount    int64               `json:"amount"`
	Status    string              `json:"status"`
	Currency  string              `json:"currency"`
	Metadata  TransactionMetadata `json:"metadata"`
	Customer  WebhookCustomer     `json:"customer"`
}

type WebhookCustomer struct {
	Email string `json:"email"`
}
