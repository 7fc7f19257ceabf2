package types

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

func (e EventType) String() string {
	return string(e)
}

const (
	EventStaked              EventType = "staking.v1.Staked"
	EventUnstaked            EventType = "staking.v1.Unstaked"
	EventRewardClaimed       EventType = "staking.v1.RewardClaimed"
	EventInterestRateChanged EventType = "staking.v1.InterestRateChanged"
	EventTokensAdded         EventType = "staking.v1.TokensAdded"
	EventEmergencyWithdraw   EventType = "staking.v1.EmergencyWithdraw"
)

// LedgerEvent is the audit record emitted after every successful mutating
// operation. Events are observability output, not ledger truth: the in-core
// state has already been committed by the time one is built.
type LedgerEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Account    string    `json:"account,omitempty"`
	Amount     uint64    `json:"amount,omitempty"`
	RewardPaid uint64    `json:"reward_paid,omitempty"`
	OldRate    uint64    `json:"old_rate,omitempty"`
	NewRate    uint64    `json:"new_rate,omitempty"`
	Timestamp  int64     `json:"timestamp"`
}

func newLedgerEvent(eventType EventType) LedgerEvent {
	return LedgerEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
	}
}

func NewStakedEvent(account string, amount uint64) LedgerEvent {
	ev := newLedgerEvent(EventStaked)
	ev.Account = account
	ev.Amount = amount
	return ev
}

func NewUnstakedEvent(account string, amount, rewardPaid uint64) LedgerEvent {
	ev := newLedgerEvent(EventUnstaked)
	ev.Account = account
	ev.Amount = amount
	ev.RewardPaid = rewardPaid
	return ev
}

func NewRewardClaimedEvent(account string, rewardPaid uint64) LedgerEvent {
	ev := newLedgerEvent(EventRewardClaimed)
	ev.Account = account
	ev.RewardPaid = rewardPaid
	return ev
}

func NewInterestRateChangedEvent(oldRate, newRate uint64) LedgerEvent {
	ev := newLedgerEvent(EventInterestRateChanged)
	ev.OldRate = oldRate
	ev.NewRate = newRate
	return ev
}

func NewTokensAddedEvent(amount uint64) LedgerEvent {
	ev := newLedgerEvent(EventTokensAdded)
	ev.Amount = amount
	return ev
}

func NewEmergencyWithdrawEvent(amount uint64) LedgerEvent {
	ev := newLedgerEvent(EventEmergencyWithdraw)
	ev.Amount = amount
	return ev
}
