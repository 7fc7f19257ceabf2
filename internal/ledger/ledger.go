package ledger

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/token"
	"github.com/stakeworks/staking-ledger/internal/types"
)

// Ledger is the single-asset staking core: per-account stake records, the
// global accrual counters, and the reward pool accountant share this one
// struct. It is deliberately unsynchronized; Guard serializes every mutating
// entry point, and the bootstrap path runs before the guard is exposed.
//
// Mutation discipline: every operation validates first, then mutates
// in-memory state, then calls the transfer bridge; a failed transfer rolls
// the in-memory mutation back before the error is returned. A settlement
// that has already paid out stands on its own even when the surrounding
// operation fails afterwards; reward settled is reward owed.
type Ledger struct {
	token token.Transferrer
	clock Clock

	// owner is the administrator account: the funding source for AddTokens
	// and the payout target for EmergencyWithdraw.
	owner string

	records            map[string]*StakeRecord
	interestRate       uint64
	totalStaked        uint64
	totalOwnerDeposits uint64
	totalInterestPaid  uint64
}

type Params struct {
	Owner          string
	InitialRateBps uint64
}

func New(params Params, transferrer token.Transferrer, clock Clock) *Ledger {
	return &Ledger{
		token:        transferrer,
		clock:        clock,
		owner:        params.Owner,
		records:      make(map[string]*StakeRecord),
		interestRate: params.InitialRateBps,
	}
}

// Restore rebuilds a ledger from a persisted snapshot. Used at startup
// before any operation is accepted.
func Restore(params Params, transferrer token.Transferrer, clock Clock, snap Snapshot) *Ledger {
	l := New(params, transferrer, clock)
	l.interestRate = snap.InterestRate
	l.totalStaked = snap.TotalStaked
	l.totalOwnerDeposits = snap.TotalOwnerDeposits
	l.totalInterestPaid = snap.TotalInterestPaid
	for account, rec := range snap.Records {
		recCopy := rec
		l.records[account] = &recCopy
	}
	return l
}

type DepositResult struct {
	Account string
	Amount  uint64
	// RewardPaid is the settlement paid out before the top-up was applied.
	RewardPaid uint64
}

type WithdrawResult struct {
	Account    string
	Amount     uint64
	RewardPaid uint64
}

type ClaimResult struct {
	Account    string
	RewardPaid uint64
}

type RateChange struct {
	OldRate uint64
	NewRate uint64
}

// Deposit pulls amount from the account into custody and credits the stake.
// An existing stake is settled first, at its current snapshot, so the top-up
// never reprices time already elapsed.
func (l *Ledger) Deposit(ctx context.Context, account string, amount uint64) (*DepositResult, error) {
	if account == "" {
		return nil, types.NewInvalidArgumentError("account is required")
	}
	if amount == 0 {
		return nil, types.NewInvalidArgumentError("deposit amount must be positive")
	}

	rec := l.records[account]

	var rewardPaid uint64
	if rec != nil && rec.Active() {
		reward, err := l.settle(ctx, account, rec)
		if err != nil {
			return nil, err
		}
		rewardPaid = reward
	}

	// pull before credit: custody must hold the funds before any counter
	// reflects them
	if err := l.token.Pull(ctx, account, amount); err != nil {
		return nil, err
	}

	// the record is only created once the pull has settled, so a failed
	// deposit leaves no trace in the map
	if rec == nil {
		rec = &StakeRecord{}
		l.records[account] = rec
	}

	now := l.clock.Now().Unix()
	rec.Amount += amount
	rec.StartTime = now
	rec.LastRewardTime = now
	rec.RateAtStake = l.interestRate
	l.totalStaked += amount

	return &DepositResult{Account: account, Amount: amount, RewardPaid: rewardPaid}, nil
}

// Withdraw settles pending reward against the pre-decrease amount, then
// debits the principal and pushes it back to the account.
func (l *Ledger) Withdraw(ctx context.Context, account string, amount uint64) (*WithdrawResult, error) {
	if amount == 0 {
		return nil, types.NewInvalidArgumentError("withdraw amount must be positive")
	}

	rec, ok := l.records[account]
	if !ok || amount > rec.Amount {
		var staked uint64
		if ok {
			staked = rec.Amount
		}
		return nil, types.NewInvalidArgumentError(
			"withdraw amount %d exceeds staked amount %d", amount, staked,
		)
	}

	rewardPaid, err := l.settle(ctx, account, rec)
	if err != nil {
		return nil, err
	}

	// debit then transfer
	rec.Amount -= amount
	l.totalStaked -= amount

	if err := l.token.Push(ctx, account, amount); err != nil {
		rec.Amount += amount
		l.totalStaked += amount
		return nil, err
	}

	return &WithdrawResult{Account: account, Amount: amount, RewardPaid: rewardPaid}, nil
}

// ClaimReward settles pending reward with no other state change. A zero
// reward is a legitimate outcome, not an error.
func (l *Ledger) ClaimReward(ctx context.Context, account string) (*ClaimResult, error) {
	rec, ok := l.records[account]
	if !ok {
		return &ClaimResult{Account: account}, nil
	}

	rewardPaid, err := l.settle(ctx, account, rec)
	if err != nil {
		return nil, err
	}

	return &ClaimResult{Account: account, RewardPaid: rewardPaid}, nil
}

// AddTokens pulls owner funding into custody and credits the reward pool.
func (l *Ledger) AddTokens(ctx context.Context, amount uint64) error {
	if amount == 0 {
		return types.NewInvalidArgumentError("funding amount must be positive")
	}

	if err := l.token.Pull(ctx, l.owner, amount); err != nil {
		return err
	}

	l.totalOwnerDeposits += amount
	return nil
}

// SetInterestRate replaces the global rate. Per-account snapshots pick the
// new rate up lazily at their next settlement.
func (l *Ledger) SetInterestRate(ctx context.Context, newRate uint64) (*RateChange, error) {
	if newRate > MaxInterestRateBps {
		return nil, types.NewInvalidArgumentError(
			"interest rate %d exceeds the maximum of %d basis points", newRate, MaxInterestRateBps,
		)
	}

	change := &RateChange{OldRate: l.interestRate, NewRate: newRate}
	l.interestRate = newRate

	log.Ctx(ctx).Info().
		Uint64("old_rate_bps", change.OldRate).
		Uint64("new_rate_bps", change.NewRate).
		Msg("Interest rate changed")

	return change, nil
}

// EmergencyWithdraw reclaims the owner-funded capital not yet consumed by
// interest payouts. The cap is accounting-based: staked principal is never
// part of the withdrawable quantity.
func (l *Ledger) EmergencyWithdraw(ctx context.Context) (uint64, error) {
	if l.totalOwnerDeposits <= l.totalInterestPaid {
		return 0, types.NewInsufficientFundsError("reward pool has nothing reclaimable")
	}
	withdrawable := l.totalOwnerDeposits - l.totalInterestPaid

	// debit then transfer
	l.totalOwnerDeposits -= withdrawable

	if err := l.token.Push(ctx, l.owner, withdrawable); err != nil {
		l.totalOwnerDeposits += withdrawable
		return 0, err
	}

	return withdrawable, nil
}

// settle computes and pays the pending reward for rec, advancing the accrual
// clock and refreshing the rate snapshot. A zero reward settles nothing: no
// transfer, no mutation, so a sub-threshold accrued fraction keeps its
// original start time instead of being silently discarded.
func (l *Ledger) settle(ctx context.Context, account string, rec *StakeRecord) (uint64, error) {
	reward := l.pendingReward(rec)
	if reward == 0 {
		return 0, nil
	}

	now := l.clock.Now().Unix()
	prevRewardTime := rec.LastRewardTime
	prevRate := rec.RateAtStake

	rec.LastRewardTime = now
	rec.RateAtStake = l.interestRate
	l.totalInterestPaid += reward

	if err := l.token.Push(ctx, account, reward); err != nil {
		rec.LastRewardTime = prevRewardTime
		rec.RateAtStake = prevRate
		l.totalInterestPaid -= reward
		return 0, err
	}

	return reward, nil
}

func (l *Ledger) pendingReward(rec *StakeRecord) uint64 {
	if !rec.Active() {
		return 0
	}
	elapsed := l.clock.Now().Unix() - rec.LastRewardTime
	return rewardFor(rec.Amount, rec.RateAtStake, elapsed)
}

// StakedAmount returns the account's current principal.
func (l *Ledger) StakedAmount(account string) uint64 {
	if rec, ok := l.records[account]; ok {
		return rec.Amount
	}
	return 0
}

// RewardsEarned returns the reward the account would be paid if it settled
// now. Read-only alias of the settlement formula.
func (l *Ledger) RewardsEarned(account string) uint64 {
	rec, ok := l.records[account]
	if !ok {
		return 0
	}
	return l.pendingReward(rec)
}

func (l *Ledger) InterestRate() uint64 {
	return l.interestRate
}

func (l *Ledger) TotalStaked() uint64 {
	return l.totalStaked
}

func (l *Ledger) Record(account string) StakeRecord {
	if rec, ok := l.records[account]; ok {
		return *rec
	}
	return StakeRecord{}
}

func (l *Ledger) PoolStatus() PoolStatus {
	status := PoolStatus{
		TotalOwnerDeposits: l.totalOwnerDeposits,
		TotalInterestPaid:  l.totalInterestPaid,
	}
	if status.TotalOwnerDeposits > status.TotalInterestPaid {
		status.Withdrawable = status.TotalOwnerDeposits - status.TotalInterestPaid
	}
	return status
}

func (l *Ledger) Snapshot() Snapshot {
	snap := Snapshot{
		InterestRate:       l.interestRate,
		TotalStaked:        l.totalStaked,
		TotalOwnerDeposits: l.totalOwnerDeposits,
		TotalInterestPaid:  l.totalInterestPaid,
		Records:            make(map[string]StakeRecord, len(l.records)),
	}
	for account, rec := range l.records {
		snap.Records[account] = *rec
	}
	return snap
}
