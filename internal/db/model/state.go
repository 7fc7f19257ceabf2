package model

const LedgerStateCollection = "ledger_state"

// LedgerStateID is the fixed document ID of the singleton state document.
const LedgerStateID = "ledger_state"

// LedgerStateDocument is the persisted copy of the ledger-wide counters.
type LedgerStateDocument struct {
	ID                 string `bson:"_id"` // Always LedgerStateID
	InterestRate       uint64 `bson:"interest_rate"`
	TotalStaked        uint64 `bson:"total_staked"`
	TotalOwnerDeposits uint64 `bson:"total_owner_deposits"`
	TotalInterestPaid  uint64 `bson:"total_interest_paid"`
	Paused             bool   `bson:"paused"`
	LastUpdated        int64  `bson:"last_updated"`
}
