// Package pow implements the client-side proof-of-work solver used to
// deter automated paste creation. The server issues a challenge string and
// a difficulty; the solver finds the smallest nonce such that
// SHA-256("{challenge}:{nonce}") has at least that many leading zero bits.
// Solving is entirely offline; only the resulting (challenge, nonce) pair
// is submitted.
package pow

import (
	"context"
	"crypto/sha256"
	"errors"
	"math/bits"
	"runtime"
	"strconv"
	"sync/atomic"
)

var (
	// ErrCancelled is returned when a solve is aborted via Cancel.
	// Distinct from transport or computation failures so callers can tell
	// "the user or a deadline stopped this" from "something is wrong".
	ErrCancelled = errors.New("proof-of-work solve cancelled")

	// ErrSolveInProgress is returned when Solve is called on a solver that
	// is already solving. Concurrent solves need separate Solver instances.
	ErrSolveInProgress = errors.New("solve already in progress")
)

// Challenge is a server-issued proof-of-work puzzle.
type Challenge struct {
	// Challenge is the opaque string issued by the server.
	Challenge string
	// Difficulty is the required number of leading zero bits in the
	// SHA-256 digest. Zero is trivially satisfied by nonce 0.
	Difficulty int
}

// Solution pairs a challenge with the minimal qualifying nonce.
type Solution struct {
	Challenge string
	Nonce     uint64
}

// State describes where a Solver is in its lifecycle.
type State int32

const (
	// StateIdle means no solve has started, or the solver is ready for a
	// new one after a terminal state.
	StateIdle State = iota
	// StateSolving means a solve is in flight.
	StateSolving
	// StateSolved means the last solve completed with a solution.
	StateSolved
	// StateCancelled means the last solve was aborted.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSolving:
		return "solving"
	case StateSolved:
		return "solved"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// DefaultBatchSize is the number of nonces tried between cooperative
// yields. Between batches the solver checks the context and yields the
// processor so a long solve cannot starve the rest of the program.
const DefaultBatchSize = 1000

// Solver searches for proof-of-work solutions. A Solver runs one solve at
// a time; its cancelled flag is instance-scoped, so cancelling one solver
// never affects another. The zero value is not ready; use NewSolver.
type Solver struct {
	state     atomic.Int32
	cancelled atomic.Bool
	batchSize uint64
}

// NewSolver returns a Solver with the default batch size.
func NewSolver() *Solver {
	return &Solver{batchSize: DefaultBatchSize}
}

// State reports the solver's current lifecycle state.
func (s *Solver) State() State {
	return State(s.state.Load())
}

// Cancel requests that the in-flight solve stop. The flag is observed at
// the next iteration, so Solve returns ErrCancelled within one batch.
// Cancel is idempotent and safe to call when no solve is running; a later
// Solve clears the flag and proceeds normally.
func (s *Solver) Cancel() {
	s.cancelled.Store(true)
}

// Solve searches nonces from 0 upward until one satisfies the challenge's
// difficulty, so the returned nonce is always the smallest that qualifies.
// There is no internal timeout: bounding wall-clock time is the caller's
// job, via ctx or Cancel. Calling Solve again after completion or
// cancellation starts a fresh search.
func (s *Solver) Solve(ctx context.Context, c Challenge) (*Solution, error) {
	for {
		cur := s.state.Load()
		if State(cur) == StateSolving {
			return nil, ErrSolveInProgress
		}
		if s.state.CompareAndSwap(cur, int32(StateSolving)) {
			break
		}
	}
	s.cancelled.Store(false)

	prefix := []byte(c.Challenge + ":")
	buf := make([]byte, 0, len(prefix)+20)

	for nonce := uint64(0); ; nonce++ {
		if s.cancelled.Load() {
			s.state.Store(int32(StateCancelled))
			return nil, ErrCancelled
		}

		if nonce != 0 && nonce%s.batchSize == 0 {
			select {
			case <-ctx.Done():
				s.state.Store(int32(StateCancelled))
				return nil, ctx.Err()
			default:
			}
			runtime.Gosched()
		}

		buf = append(buf[:0], prefix...)
		buf = strconv.AppendUint(buf, nonce, 10)
		digest := sha256.Sum256(buf)

		if leadingZeroBits(digest[:]) >= c.Difficulty {
			s.state.Store(int32(StateSolved))
			return &Solution{Challenge: c.Challenge, Nonce: nonce}, nil
		}
	}
}

// Verify reports whether a solution satisfies a challenge. The server does
// the authoritative check; this is for local sanity and tests.
func Verify(c Challenge, sol *Solution) bool {
	if sol == nil || sol.Challenge != c.Challenge {
		return false
	}
	digest := sha256.Sum256([]byte(c.Challenge + ":" + strconv.FormatUint(sol.Nonce, 10)))
	return leadingZeroBits(digest[:]) >= c.Difficulty
}

// leadingZeroBits counts consecutive zero bits from the most significant
// bit of the digest.
func leadingZeroBits(digest []byte) int {
	n := 0
	for _, b := range digest {
		if b == 0 {
			n += 8
			continue
		}
		n += bits.LeadingZeros8(b)
		break
	}
	return n
}
