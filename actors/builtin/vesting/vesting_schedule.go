package vesting

import (
	"fmt"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
)

// VestingSchedule describes a cliff-then-linear release of tokens over a
// window of epochs. It is immutable once constructed.
//
// Before CliffTime nothing is vested. At CliffTime the cliff amount vests
// at once, and the remainder then accrues linearly until EndTime, after
// which the full vesting amount is vested.
type VestingSchedule struct {
	StartTime abi.ChainEpoch
	CliffTime abi.ChainEpoch
	EndTime   abi.ChainEpoch
}

// ErrInvalidTimeRange is returned when a schedule's epochs are not ordered
// as StartTime < EndTime with StartTime <= CliffTime <= EndTime.
type ErrInvalidTimeRange struct {
	StartTime abi.ChainEpoch
	CliffTime abi.ChainEpoch
	EndTime   abi.ChainEpoch
}

func (e ErrInvalidTimeRange) Error() string {
	return fmt.Sprintf("invalid time range: end_time (%d) should be greater than start_time (%d), with cliff_time (%d) between them",
		e.EndTime, e.StartTime, e.CliffTime)
}

// ErrExcessiveAmount is returned when a cliff amount exceeds its vesting amount.
type ErrExcessiveAmount struct {
	CliffAmount   abi.TokenAmount
	VestingAmount abi.TokenAmount
}

func (e ErrExcessiveAmount) Error() string {
	return fmt.Sprintf("cliff_amount (%v) should be less than or equal to vesting_amount (%v)", e.CliffAmount, e.VestingAmount)
}

// MakeVestingSchedule validates the epoch ordering and returns a schedule.
func MakeVestingSchedule(startTime, cliffTime, endTime abi.ChainEpoch) (VestingSchedule, error) {
	if endTime <= startTime || cliffTime < startTime || cliffTime > endTime {
		return VestingSchedule{}, ErrInvalidTimeRange{StartTime: startTime, CliffTime: cliffTime, EndTime: endTime}
	}
	return VestingSchedule{StartTime: startTime, CliffTime: cliffTime, EndTime: endTime}, nil
}

// VestedAmount returns the cumulative amount vested at epoch `now` for a
// grant of `vestingAmount` with `cliffAmount` released at the cliff.
//
// Interpolation between cliff and end divides last, so intermediate values
// round down and the result is monotonically non-decreasing in `now`.
// A schedule with CliffTime == EndTime releases everything at that epoch.
func (vs VestingSchedule) VestedAmount(now abi.ChainEpoch, vestingAmount, cliffAmount abi.TokenAmount) abi.TokenAmount {
	if now < vs.CliffTime {
		return big.Zero()
	}
	if now >= vs.EndTime {
		return vestingAmount
	}
	// CliffTime <= now < EndTime, so EndTime > CliffTime here.
	remaining := big.Sub(vestingAmount, cliffAmount)
	elapsed := big.NewInt(int64(now - vs.CliffTime))
	duration := big.NewInt(int64(vs.EndTime - vs.CliffTime))
	return big.Add(cliffAmount, big.Div(big.Mul(remaining, elapsed), duration))
}

// AccountStatus is the lifecycle phase of a schedule at some epoch.
type AccountStatus int

const (
	StatusPending AccountStatus = iota
	StatusVesting
	StatusFullyVested
)

func (s AccountStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusVesting:
		return "vesting"
	case StatusFullyVested:
		return "fully_vested"
	}
	return "unknown"
}

// StatusAt reports the phase of the schedule at epoch `now`. A schedule is
// pending until its cliff: nothing has vested before then.
func (vs VestingSchedule) StatusAt(now abi.ChainEpoch) AccountStatus {
	if now < vs.CliffTime {
		return StatusPending
	}
	if now >= vs.EndTime {
		return StatusFullyVested
	}
	return StatusVesting
}
