package entity

import "strconv"

// Block is an L2 block. ParentHash links to the previous block and is never followed locally.
type Block struct {
	Number           uint64        `json:"number"`
	Hash             string        `json:"hash"`
	ParentHash       string        `json:"parentHash"`
	Timestamp        int64         `json:"timestamp"`
	GasUsed          string        `json:"gasUsed"`
	GasLimit         string        `json:"gasLimit"`
	TransactionCount int           `json:"transactionCount"`
	Transactions     []Transaction `json:"transactions,omitempty"`
	StateRoot        string        `json:"stateRoot"`
	BatchHash        string        `json:"batchHash,omitempty"`
	Sequencer        string        `json:"sequencer"`
}

// GasUsedPercent returns gasUsed/gasLimit in percent, 0 when either is not a number.
func (b Block) GasUsedPercent() float64 {
	used, err := strconv.ParseFloat(b.GasUsed, 64)
	if err != nil {
		return 0
	}
	limit, err := strconv.ParseFloat(b.GasLimit, 64)
	if err != nil || limit == 0 {
		return 0
	}
	return used / limit * 100
}
