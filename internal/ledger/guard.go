package ledger

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/types"
)

// Guard wraps the core ledger with the three cross-cutting gates: a
// reentrancy barrier, the pause flag, and the owner check. It is the only
// entry point the rest of the service sees; the bare Ledger never escapes
// the constructor.
//
// The reentrancy barrier is a non-blocking TryLock: a transfer bridge that
// calls back into a mutating operation while one is in flight gets an
// Unavailable error instead of a deadlock or a double credit.
type Guard struct {
	core  *Ledger
	owner string

	mu     sync.RWMutex
	paused atomic.Bool
}

func NewGuard(core *Ledger) *Guard {
	return &Guard{
		core:  core,
		owner: core.owner,
	}
}

func (g *Guard) enter() error {
	if !g.mu.TryLock() {
		return types.NewUnavailableError("reentrant call rejected: another mutating operation is in flight")
	}
	return nil
}

func (g *Guard) exit() {
	g.mu.Unlock()
}

func (g *Guard) requireOwner(caller string) error {
	if caller != g.owner {
		return types.NewUnauthorizedError(caller)
	}
	return nil
}

func (g *Guard) Deposit(ctx context.Context, account string, amount uint64) (*DepositResult, error) {
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.exit()

	// deposits are pause-gated; withdrawals and claims are not, so stakers
	// can always exit and collect owed reward
	if g.paused.Load() {
		return nil, types.NewUnavailableError("ledger is paused, deposits are not accepted")
	}

	return g.core.Deposit(ctx, account, amount)
}

func (g *Guard) Withdraw(ctx context.Context, account string, amount uint64) (*WithdrawResult, error) {
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.exit()

	return g.core.Withdraw(ctx, account, amount)
}

func (g *Guard) ClaimReward(ctx context.Context, account string) (*ClaimResult, error) {
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.exit()

	return g.core.ClaimReward(ctx, account)
}

func (g *Guard) AddTokens(ctx context.Context, caller string, amount uint64) error {
	if err := g.requireOwner(caller); err != nil {
		return err
	}
	if err := g.enter(); err != nil {
		return err
	}
	defer g.exit()

	return g.core.AddTokens(ctx, amount)
}

func (g *Guard) SetInterestRate(ctx context.Context, caller string, newRate uint64) (*RateChange, error) {
	if err := g.requireOwner(caller); err != nil {
		return nil, err
	}
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.exit()

	return g.core.SetInterestRate(ctx, newRate)
}

func (g *Guard) EmergencyWithdraw(ctx context.Context, caller string) (uint64, error) {
	if err := g.requireOwner(caller); err != nil {
		return 0, err
	}
	if err := g.enter(); err != nil {
		return 0, err
	}
	defer g.exit()

	return g.core.EmergencyWithdraw(ctx)
}

func (g *Guard) Pause(ctx context.Context, caller string) error {
	if err := g.requireOwner(caller); err != nil {
		return err
	}
	if err := g.enter(); err != nil {
		return err
	}
	defer g.exit()

	g.paused.Store(true)
	log.Ctx(ctx).Warn().Msg("Ledger paused: deposits are blocked")
	return nil
}

func (g *Guard) Unpause(ctx context.Context, caller string) error {
	if err := g.requireOwner(caller); err != nil {
		return err
	}
	if err := g.enter(); err != nil {
		return err
	}
	defer g.exit()

	g.paused.Store(false)
	log.Ctx(ctx).Info().Msg("Ledger unpaused")
	return nil
}

func (g *Guard) Paused() bool {
	return g.paused.Load()
}

// RestorePaused reinstates a persisted pause flag at bootstrap, before the
// guard is serving traffic. Not an owner-gated operation: the flag was
// owner-approved when it was originally set.
func (g *Guard) RestorePaused(paused bool) {
	g.paused.Store(paused)
}

// Read accessors take the read side of the barrier. HTTP handlers and the
// stats poller run on their own goroutines, so a view racing a mutation
// would otherwise read the record map while an operation writes it.

func (g *Guard) StakedAmount(account string) uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.core.StakedAmount(account)
}

func (g *Guard) RewardsEarned(account string) uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.core.RewardsEarned(account)
}

func (g *Guard) InterestRate() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.core.InterestRate()
}

func (g *Guard) TotalStaked() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.core.TotalStaked()
}

func (g *Guard) Record(account string) StakeRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.core.Record(account)
}

func (g *Guard) PoolStatus() PoolStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.core.PoolStatus()
}

func (g *Guard) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.core.Snapshot()
}
