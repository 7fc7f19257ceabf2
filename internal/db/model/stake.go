package model

const StakeRecordCollection = "stake_records"

// StakeRecordDocument mirrors the per-account accrual state of the core
// ledger. The account is the document ID: one record per account, upserted
// after every mutating operation that touches it.
type StakeRecordDocument struct {
	Account        string `bson:"_id"`
	Amount         uint64 `bson:"amount"`
	StartTime      int64  `bson:"start_time"`
	LastRewardTime int64  `bson:"last_reward_time"`
	RateAtStake    uint64 `bson:"rate_at_stake"`
	UpdatedAt      int64  `bson:"updated_at"`
}
