package vesting_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestlabs/vesting-actors/actors/builtin/vesting"
)

func TestMakeVestingSchedule(t *testing.T) {
	t.Run("valid ranges", func(t *testing.T) {
		for _, tc := range []struct{ start, cliff, end abi.ChainEpoch }{
			{100, 105, 110},
			{100, 100, 110}, // cliff at start
			{100, 110, 110}, // cliff at end
			{0, 0, 1},
		} {
			vs, err := vesting.MakeVestingSchedule(tc.start, tc.cliff, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.start, vs.StartTime)
			assert.Equal(t, tc.cliff, vs.CliffTime)
			assert.Equal(t, tc.end, vs.EndTime)
		}
	})

	t.Run("invalid ranges", func(t *testing.T) {
		for _, tc := range []struct{ start, cliff, end abi.ChainEpoch }{
			{100, 105, 100}, // end == start
			{100, 105, 99},  // end < start
			{100, 99, 110},  // cliff before start
			{100, 111, 110}, // cliff after end
		} {
			_, err := vesting.MakeVestingSchedule(tc.start, tc.cliff, tc.end)
			require.Error(t, err)
			assert.IsType(t, vesting.ErrInvalidTimeRange{}, err)
		}
	})
}

func TestVestedAmount(t *testing.T) {
	schedule, err := vesting.MakeVestingSchedule(100, 105, 110)
	require.NoError(t, err)
	vestingAmount := abi.NewTokenAmount(1000)
	cliffAmount := abi.NewTokenAmount(250)

	vested := func(now abi.ChainEpoch) abi.TokenAmount {
		return schedule.VestedAmount(now, vestingAmount, cliffAmount)
	}

	assert.Equal(t, big.Zero(), vested(99))
	assert.Equal(t, big.Zero(), vested(100)) // at start, before cliff
	assert.Equal(t, big.Zero(), vested(104))
	assert.Equal(t, abi.NewTokenAmount(250), vested(105)) // cliff releases at once
	assert.Equal(t, abi.NewTokenAmount(400), vested(106))
	assert.Equal(t, abi.NewTokenAmount(550), vested(107))
	assert.Equal(t, abi.NewTokenAmount(850), vested(109))
	assert.Equal(t, abi.NewTokenAmount(1000), vested(110))
	assert.Equal(t, abi.NewTokenAmount(1000), vested(10000))
}

func TestVestedAmountRoundsDown(t *testing.T) {
	schedule, err := vesting.MakeVestingSchedule(0, 0, 3)
	require.NoError(t, err)
	vestingAmount := abi.NewTokenAmount(100)

	assert.Equal(t, abi.NewTokenAmount(33), schedule.VestedAmount(1, vestingAmount, big.Zero()))
	assert.Equal(t, abi.NewTokenAmount(66), schedule.VestedAmount(2, vestingAmount, big.Zero()))
	assert.Equal(t, abi.NewTokenAmount(100), schedule.VestedAmount(3, vestingAmount, big.Zero()))
}

func TestVestedAmountDegenerateCliff(t *testing.T) {
	// Cliff coinciding with the end releases everything at one epoch.
	schedule, err := vesting.MakeVestingSchedule(100, 110, 110)
	require.NoError(t, err)
	vestingAmount := abi.NewTokenAmount(1000)

	assert.Equal(t, big.Zero(), schedule.VestedAmount(109, vestingAmount, big.Zero()))
	assert.Equal(t, vestingAmount, schedule.VestedAmount(110, vestingAmount, big.Zero()))
}

func TestVestedAmountMonotonic(t *testing.T) {
	schedule, err := vesting.MakeVestingSchedule(100, 103, 117)
	require.NoError(t, err)
	vestingAmount := abi.NewTokenAmount(1000)
	cliffAmount := abi.NewTokenAmount(123)

	prev := big.Zero()
	for now := abi.ChainEpoch(95); now <= 125; now++ {
		cur := schedule.VestedAmount(now, vestingAmount, cliffAmount)
		assert.True(t, cur.GreaterThanEqual(prev), "vested amount decreased at epoch %d: %v < %v", now, cur, prev)
		assert.True(t, cur.LessThanEqual(vestingAmount))
		prev = cur
	}
	assert.Equal(t, vestingAmount, prev)
}

func TestScheduleStatus(t *testing.T) {
	schedule, err := vesting.MakeVestingSchedule(100, 105, 110)
	require.NoError(t, err)

	assert.Equal(t, vesting.StatusPending, schedule.StatusAt(99))
	// Between start and cliff nothing has vested yet.
	assert.Equal(t, vesting.StatusPending, schedule.StatusAt(100))
	assert.Equal(t, vesting.StatusPending, schedule.StatusAt(102))
	assert.Equal(t, vesting.StatusPending, schedule.StatusAt(104))
	assert.Equal(t, vesting.StatusVesting, schedule.StatusAt(105))
	assert.Equal(t, vesting.StatusVesting, schedule.StatusAt(109))
	assert.Equal(t, vesting.StatusFullyVested, schedule.StatusAt(110))
	assert.Equal(t, "vesting", schedule.StatusAt(105).String())
}
