package entity

// BatchStatus tracks a batch through proof verification.
type BatchStatus string

const (
	BatchStatusPending   BatchStatus = "pending"
	BatchStatusVerified  BatchStatus = "verified"
	BatchStatusFinalized BatchStatus = "finalized"
)

// Batch is a rollup proof submission. L1TxHash is set once it lands on the settlement layer.
type Batch struct {
	Number           uint64      `json:"number"`
	Hash             string      `json:"hash"`
	Timestamp        int64       `json:"timestamp"`
	TransactionCount int         `json:"transactionCount"`
	StateRoot        string      `json:"stateRoot"`
	Proof            string      `json:"proof"`
	Status           BatchStatus `json:"status"`
	L1TxHash         string      `json:"l1TxHash,omitempty"`
}
