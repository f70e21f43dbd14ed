package dicecore

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// Roller is the pluggable randomness source every dice-producing node and
// iterative modifier calls through. It deliberately knows nothing about
// expression trees or RolledDie provenance — DiceResultRoller adds that.
type Roller interface {
	// Roll produces ndice integers in [min, min+nsides-1]. It fails with an
	// OutOfRange RollerError when ndice is outside [0,1000] or nsides is
	// outside [2,100000].
	Roll(ctx context.Context, ndice, nsides, min int, dieType DieType) ([]int, error)

	// RollVals produces ndice integers, each drawn from vals.
	RollVals(ctx context.Context, ndice int, vals []int, dieType DieType) ([]int, error)
}

func validateRollArgs(ndice, nsides int) error {
	if ndice < 0 || ndice > 1000 {
		return NewOutOfRangeError(fmt.Sprintf("ndice %d outside [0,1000]", ndice))
	}
	if nsides < 2 || nsides > 100000 {
		return NewOutOfRangeError(fmt.Sprintf("nsides %d outside [2,100000]", nsides))
	}
	return nil
}

func validateRollValsArgs(ndice int, vals []int) error {
	if ndice < 0 || ndice > 1000 {
		return NewOutOfRangeError(fmt.Sprintf("ndice %d outside [0,1000]", ndice))
	}
	if len(vals) == 0 {
		return NewOutOfRangeError("value list is empty")
	}
	return nil
}

// RNGRoller draws from a math/rand.Rand. By default that Rand's source
// reads every value from the system CSPRNG (crypto/rand), matching the
// teacher's own crypto-backed default Source; a caller may substitute a
// deterministic source for reproducible tests via NewRNGRollerWithSource.
type RNGRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRNGRoller builds an RNGRoller backed by the system CSPRNG.
func NewRNGRoller() *RNGRoller {
	return &RNGRoller{rng: secureSource()}
}

// NewRNGRollerWithSource builds an RNGRoller around a caller-supplied
// math/rand.Source, e.g. rand.NewSource(seed) for deterministic replay in
// tests.
func NewRNGRollerWithSource(src rand.Source) *RNGRoller {
	return &RNGRoller{rng: rand.New(src)}
}

// Roll implements Roller.
func (r *RNGRoller) Roll(ctx context.Context, ndice, nsides, min int, dieType DieType) ([]int, error) {
	if err := validateRollArgs(ndice, nsides); err != nil {
		return nil, err
	}
	if err := chargeRolls(ctx, ndice); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, ndice)
	for i := range out {
		out[i] = min + r.rng.Intn(nsides)
	}
	return out, nil
}

// RollVals implements Roller, picking uniformly from vals with replacement.
func (r *RNGRoller) RollVals(ctx context.Context, ndice int, vals []int, dieType DieType) ([]int, error) {
	if err := validateRollValsArgs(ndice, vals); err != nil {
		return nil, err
	}
	if err := chargeRolls(ctx, ndice); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, ndice)
	for i := range out {
		out[i] = vals[r.rng.Intn(len(vals))]
	}
	return out, nil
}

// PreRolledRoller consumes an ordered, single-consumer queue of
// pre-determined values. It is the deterministic replay vehicle spec §5
// and §8 rely on: the same queue fed to the same expression always
// reproduces the same RollResult tree.
type PreRolledRoller struct {
	mu    sync.Mutex
	queue []int
}

// NewPreRolledRoller builds a PreRolledRoller that will hand out values in
// the order given.
func NewPreRolledRoller(values []int) *PreRolledRoller {
	return &PreRolledRoller{queue: append([]int(nil), values...)}
}

// Remaining reports how many values are left in the queue.
func (p *PreRolledRoller) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Roll implements Roller. Each consumed value is checked against
// [min, min+nsides-1]; a value outside that interval is an OutOfRange
// error, and an empty queue is an Exhausted error.
func (p *PreRolledRoller) Roll(ctx context.Context, ndice, nsides, min int, dieType DieType) ([]int, error) {
	if err := validateRollArgs(ndice, nsides); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int, 0, ndice)
	for i := 0; i < ndice; i++ {
		if len(p.queue) == 0 {
			return nil, NewExhaustedError("pre-rolled queue exhausted")
		}
		v := p.queue[0]
		max := min + nsides - 1
		if v < min || v > max {
			return nil, NewOutOfRangeError(fmt.Sprintf("value %d outside [%d,%d]", v, min, max))
		}
		p.queue = p.queue[1:]
		out = append(out, v)
	}
	if err := chargeRolls(ctx, ndice); err != nil {
		return nil, err
	}
	return out, nil
}

// RollVals implements Roller. Each consumed value is checked for
// membership in vals.
func (p *PreRolledRoller) RollVals(ctx context.Context, ndice int, vals []int, dieType DieType) ([]int, error) {
	if err := validateRollValsArgs(ndice, vals); err != nil {
		return nil, err
	}
	allowed := make(map[int]bool, len(vals))
	for _, v := range vals {
		allowed[v] = true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int, 0, ndice)
	for i := 0; i < ndice; i++ {
		if len(p.queue) == 0 {
			return nil, NewExhaustedError("pre-rolled queue exhausted")
		}
		v := p.queue[0]
		if !allowed[v] {
			return nil, NewOutOfRangeError(fmt.Sprintf("value %d not in %v", v, vals))
		}
		p.queue = p.queue[1:]
		out = append(out, v)
	}
	if err := chargeRolls(ctx, ndice); err != nil {
		return nil, err
	}
	return out, nil
}

// RollFunc is the signature a CallbackRoller delegates Roll to. It may
// suspend (block on ctx, an external RPC, a human prompt, etc.) before
// returning a materialized slice of ndice values.
type RollFunc func(ctx context.Context, ndice, nsides, min int, dieType DieType) ([]int, error)

// RollValsFunc is the signature a CallbackRoller delegates RollVals to.
type RollValsFunc func(ctx context.Context, ndice int, vals []int, dieType DieType) ([]int, error)

// CallbackRoller delegates both Roller methods to user-supplied functions,
// e.g. to source rolls from a physical dice-tray webcam, a chat bot
// integration, or a test double with custom failure injection.
type CallbackRoller struct {
	RollFn     RollFunc
	RollValsFn RollValsFunc
}

// NewCallbackRoller builds a CallbackRoller from the two delegate funcs.
func NewCallbackRoller(rollFn RollFunc, rollValsFn RollValsFunc) *CallbackRoller {
	return &CallbackRoller{RollFn: rollFn, RollValsFn: rollValsFn}
}

// Roll implements Roller by delegating to RollFn.
func (c *CallbackRoller) Roll(ctx context.Context, ndice, nsides, min int, dieType DieType) ([]int, error) {
	if err := validateRollArgs(ndice, nsides); err != nil {
		return nil, err
	}
	vals, err := c.RollFn(ctx, ndice, nsides, min, dieType)
	if err != nil {
		return nil, err
	}
	if err := chargeRolls(ctx, len(vals)); err != nil {
		return nil, err
	}
	return vals, nil
}

// RollVals implements Roller by delegating to RollValsFn.
func (c *CallbackRoller) RollVals(ctx context.Context, ndice int, vals []int, dieType DieType) ([]int, error) {
	if err := validateRollValsArgs(ndice, vals); err != nil {
		return nil, err
	}
	out, err := c.RollValsFn(ctx, ndice, vals, dieType)
	if err != nil {
		return nil, err
	}
	if err := chargeRolls(ctx, len(out)); err != nil {
		return nil, err
	}
	return out, nil
}
