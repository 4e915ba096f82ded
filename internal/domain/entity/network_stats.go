package entity

// NetworkStats is the network snapshot served by the stats endpoint.
// Growth and change fields are percentages relative to the previous period.
type NetworkStats struct {
	LatestBlock       uint64  `json:"latestBlock"`
	TotalTransactions uint64  `json:"totalTransactions"`
	ActiveAddresses   uint64  `json:"activeAddresses"`
	TotalValueLocked  float64 `json:"totalValueLocked"`
	AverageTps        float64 `json:"averageTps"`
	AverageBlockTime  float64 `json:"averageBlockTime"` // milliseconds
	VerifiedBatches   uint64  `json:"verifiedBatches"`
	StorageUsed       float64 `json:"storageUsed"` // GB

	BlockGrowth     float64 `json:"blockGrowth"`
	TxGrowth        float64 `json:"txGrowth"`
	AddressGrowth   float64 `json:"addressGrowth"`
	TvlGrowth       float64 `json:"tvlGrowth"`
	TpsGrowth       float64 `json:"tpsGrowth"`
	BlockTimeChange float64 `json:"blockTimeChange"`
	BatchGrowth     float64 `json:"batchGrowth"`
	StorageGrowth   float64 `json:"storageGrowth"`
}
