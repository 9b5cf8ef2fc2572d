package near

// BlockView mirrors the JSON form of a block as served by both the lake
// block.json objects and the JSON-RPC block method.
type BlockView struct {
	Author string            `json:"author"`
	Header BlockHeaderView   `json:"header"`
	Chunks []ChunkHeaderView `json:"chunks"`
}

type BlockHeaderView struct {
	Height         uint64     `json:"height"`
	Hash           CryptoHash `json:"hash"`
	PrevHash       CryptoHash `json:"prev_hash"`
	ChunksIncluded uint64     `json:"chunks_included"`
	Timestamp      uint64     `json:"timestamp"`    // nanoseconds
	GasPrice       string     `json:"gas_price"`    // u128 decimal string
	TotalSupply    string     `json:"total_supply"` // u128 decimal string
}

type ChunkHeaderView struct {
	ChunkHash      CryptoHash `json:"chunk_hash"`
	PrevBlockHash  CryptoHash `json:"prev_block_hash"`
	ShardID        uint64     `json:"shard_id"`
	HeightCreated  uint64     `json:"height_created"`
	HeightIncluded uint64     `json:"height_included"`
	GasUsed        uint64     `json:"gas_used"`
	GasLimit       uint64     `json:"gas_limit"`
}
