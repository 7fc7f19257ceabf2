package ledger

// StakeRecord is the per-account accrual state. Records are implicitly
// zero-valued for every account and never deleted: a full withdrawal zeroes
// Amount, after which the stale time and rate fields are inert because a
// zero amount accrues nothing.
type StakeRecord struct {
	// Amount is the staked principal in the smallest token denomination.
	Amount uint64
	// StartTime is the unix time of the most recent deposit. Informational
	// only; the reward formula never reads it.
	StartTime int64
	// LastRewardTime is the unix time up to which reward has been settled.
	// It never decreases.
	LastRewardTime int64
	// RateAtStake is the annualized rate in basis points snapshotted at the
	// last settlement. Time elapsed since LastRewardTime is priced at this
	// snapshot, not at the current global rate.
	RateAtStake uint64
}

// Active reports whether the record accrues reward.
func (r StakeRecord) Active() bool {
	return r.Amount > 0
}

// PoolStatus is the reward pool accountant's view of the ledger-wide
// funding counters.
type PoolStatus struct {
	TotalOwnerDeposits uint64
	TotalInterestPaid  uint64
	// Withdrawable is the owner-funded capital not yet consumed by interest
	// payouts. It is an accounting cap, not a custody guarantee.
	Withdrawable uint64
}

// Snapshot is a full copy of ledger state, used for persistence and for the
// dump-state command. Mutating a snapshot does not touch the ledger.
type Snapshot struct {
	InterestRate       uint64
	TotalStaked        uint64
	TotalOwnerDeposits uint64
	TotalInterestPaid  uint64
	Records            map[string]StakeRecord
}
