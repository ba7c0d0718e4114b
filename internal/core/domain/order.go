package domain

// Order is an ephemeral value consumed by payment-link generation. It is not
// persisted; the rail-side wallet refId ("order-{id}") is the only durable
// trace back to the order.
type Order struct {
	ID string `json:"id"`
	// Amount is a decimal string, passed through to the rail unparsed.
	Amount string `json:"amount"`
	// ChainKey selects the collection chain; empty resolves to the default.
	ChainKey string `json:"chain_key,omitempty"`
}

// PaymentLink is the derived result of a payment-link request. OrderID and
// Amount echo the request so the response is self-describing for callers
// without an order store.
type PaymentLink struct {
	WalletAddress string `json:"wallet_address"`
	OrderID       string `json:"order_id"`
	Amount        string `json:"amount"`
	Link          string `json:"link"`
	EncodedLink   string `json:"encoded_link"`
}
