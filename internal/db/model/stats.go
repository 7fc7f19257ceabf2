package model

const OverallStatsCollection = "overall_stats"

// OverallStatsDocument is the periodic ledger-wide snapshot written by the
// stats poller.
type OverallStatsDocument struct {
	ID                 string `bson:"_id"` // Always "overall_stats"
	TotalStaked        uint64 `bson:"total_staked"`
	ActiveAccounts     uint64 `bson:"active_accounts"`
	TotalOwnerDeposits uint64 `bson:"total_owner_deposits"`
	TotalInterestPaid  uint64 `bson:"total_interest_paid"`
	InterestRate       uint64 `bson:"interest_rate"`
	LastUpdated        int64  `bson:"last_updated"`
}
