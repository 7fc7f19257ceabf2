package model

import "github.com/stakeworks/staking-ledger/internal/types"

const LedgerEventCollection = "ledger_events"

// LedgerEventDocument is the append-only audit trail entry for a successful
// mutating operation.
type LedgerEventDocument struct {
	ID         string `bson:"_id"` // event uuid
	Type       string `bson:"type"`
	Account    string `bson:"account,omitempty"`
	Amount     uint64 `bson:"amount,omitempty"`
	RewardPaid uint64 `bson:"reward_paid,omitempty"`
	OldRate    uint64 `bson:"old_rate,omitempty"`
	NewRate    uint64 `bson:"new_rate,omitempty"`
	Timestamp  int64  `bson:"timestamp"`
}

func FromLedgerEvent(ev *types.LedgerEvent) *LedgerEventDocument {
	return &LedgerEventDocument{
		ID:         ev.ID,
		Type:       ev.Type.String(),
		Account:    ev.Account,
		Amount:     ev.Amount,
		RewardPaid: ev.RewardPaid,
		OldRate:    ev.OldRate,
		NewRate:    ev.NewRate,
		Timestamp:  ev.Timestamp,
	}
}
