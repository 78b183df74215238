package vesting_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestlabs/vesting-actors/actors/builtin/vesting"
	"github.com/vestlabs/vesting-actors/actors/util/adt"
	"github.com/vestlabs/vesting-actors/support/ipld"
	tutils "github.com/vestlabs/vesting-actors/support/testing"
)

func newTestStore(t *testing.T) adt.Store {
	return ipld.NewADTStore(context.Background())
}

func newTestState(t *testing.T, store adt.Store, deposited int64) *vesting.State {
	admin := tutils.NewIDAddr(t, 101)
	manager := tutils.NewIDAddr(t, 102)
	st, err := vesting.ConstructState(store, admin, []addr.Address{manager}, "uusd", abi.NewTokenAmount(deposited))
	require.NoError(t, err)
	return st
}

func mustMakeAccount(t *testing.T, owner, recipient addr.Address, amount, cliff int64) *vesting.VestingAccount {
	schedule, err := vesting.MakeVestingSchedule(100, 105, 110)
	require.NoError(t, err)
	account, err := vesting.MakeVestingAccount(owner, recipient, "uusd", abi.NewTokenAmount(amount), abi.NewTokenAmount(cliff), schedule)
	require.NoError(t, err)
	return account
}

func TestConstructState(t *testing.T) {
	store := newTestStore(t)
	st := newTestState(t, store, 2000)

	assert.Equal(t, "uusd", st.Denom)
	assert.Equal(t, abi.NewTokenAmount(2000), st.TotalDeposited)
	assert.Equal(t, abi.NewTokenAmount(2000), st.UnallocatedAmount)
	assert.Len(t, st.AuthorizedParties(), 2)

	recipients, err := st.CollectRecipients(store)
	require.NoError(t, err)
	assert.Empty(t, recipients)
}

func TestMakeVestingAccount(t *testing.T) {
	owner := tutils.NewIDAddr(t, 101)
	alice := tutils.NewIDAddr(t, 103)
	schedule, err := vesting.MakeVestingSchedule(100, 105, 110)
	require.NoError(t, err)

	t.Run("zero vesting amount", func(t *testing.T) {
		_, err := vesting.MakeVestingAccount(owner, alice, "uusd", big.Zero(), big.Zero(), schedule)
		assert.Equal(t, vesting.ErrZeroVestingAmount, err)
	})

	t.Run("cliff exceeds vesting amount", func(t *testing.T) {
		_, err := vesting.MakeVestingAccount(owner, alice, "uusd", abi.NewTokenAmount(100), abi.NewTokenAmount(101), schedule)
		require.Error(t, err)
		assert.IsType(t, vesting.ErrExcessiveAmount{}, err)
	})

	t.Run("negative cliff amount", func(t *testing.T) {
		_, err := vesting.MakeVestingAccount(owner, alice, "uusd", abi.NewTokenAmount(100), abi.NewTokenAmount(-1), schedule)
		require.Error(t, err)
	})

	t.Run("fresh account has nothing claimed", func(t *testing.T) {
		account, err := vesting.MakeVestingAccount(owner, alice, "uusd", abi.NewTokenAmount(1000), abi.NewTokenAmount(250), schedule)
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), account.ClaimedAmount)
		assert.False(t, account.FullyClaimed())
		assert.Equal(t, abi.NewTokenAmount(250), account.ClaimableAmount(105))
	})
}

func TestLedger(t *testing.T) {
	t.Run("reserve within budget", func(t *testing.T) {
		st := newTestState(t, newTestStore(t), 2000)
		require.NoError(t, st.Reserve(abi.NewTokenAmount(1500)))
		assert.Equal(t, abi.NewTokenAmount(500), st.UnallocatedAmount)
	})

	t.Run("reserve beyond budget fails atomically", func(t *testing.T) {
		st := newTestState(t, newTestStore(t), 2000)
		err := st.Reserve(abi.NewTokenAmount(2100))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2000 available but trying to allocate 2100")
		assert.Equal(t, abi.NewTokenAmount(2000), st.UnallocatedAmount)
	})

	t.Run("release returns funds", func(t *testing.T) {
		st := newTestState(t, newTestStore(t), 2000)
		require.NoError(t, st.Reserve(abi.NewTokenAmount(1500)))
		st.Release(abi.NewTokenAmount(700))
		assert.Equal(t, abi.NewTokenAmount(1200), st.UnallocatedAmount)
	})

	t.Run("withdraw clamps to available", func(t *testing.T) {
		st := newTestState(t, newTestStore(t), 2000)
		require.NoError(t, st.Reserve(abi.NewTokenAmount(1000)))

		amount, err := st.WithdrawUnallocated(abi.NewTokenAmount(1500))
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(1000), amount)
		assert.True(t, st.UnallocatedAmount.IsZero())

		_, err = st.WithdrawUnallocated(abi.NewTokenAmount(1))
		assert.Equal(t, vesting.ErrNothingToWithdraw, err)
	})

	t.Run("withdraw below available", func(t *testing.T) {
		st := newTestState(t, newTestStore(t), 2000)
		amount, err := st.WithdrawUnallocated(abi.NewTokenAmount(300))
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(300), amount)
		assert.Equal(t, abi.NewTokenAmount(1700), st.UnallocatedAmount)
	})
}

func TestRegistry(t *testing.T) {
	owner := tutils.NewIDAddr(t, 101)
	alice := tutils.NewIDAddr(t, 103)
	bob := tutils.NewIDAddr(t, 104)

	t.Run("put and load", func(t *testing.T) {
		store := newTestStore(t)
		st := newTestState(t, store, 2000)

		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, alice, 1000, 250)))
		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, alice, 500, 0)))

		accounts, err := st.LoadVestingAccounts(store, alice)
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, abi.NewTokenAmount(1000), accounts[0].VestingAmount)
		assert.Equal(t, abi.NewTokenAmount(500), accounts[1].VestingAmount)

		accounts, err = st.LoadVestingAccounts(store, bob)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("set replaces wholesale", func(t *testing.T) {
		store := newTestStore(t)
		st := newTestState(t, store, 2000)
		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, alice, 1000, 250)))
		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, alice, 500, 0)))

		keep := mustMakeAccount(t, owner, alice, 500, 0)
		require.NoError(t, st.SetVestingAccounts(store, alice, []*vesting.VestingAccount{keep}))

		accounts, err := st.LoadVestingAccounts(store, alice)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, abi.NewTokenAmount(500), accounts[0].VestingAmount)

		// Empty list removes the recipient entirely.
		require.NoError(t, st.SetVestingAccounts(store, alice, nil))
		recipients, err := st.CollectRecipients(store)
		require.NoError(t, err)
		assert.Empty(t, recipients)
	})

	t.Run("update claimed amount", func(t *testing.T) {
		store := newTestStore(t)
		st := newTestState(t, store, 2000)
		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, alice, 1000, 250)))

		require.NoError(t, st.UpdateClaimedAmount(store, alice, 0, abi.NewTokenAmount(250)))
		accounts, err := st.LoadVestingAccounts(store, alice)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(250), accounts[0].ClaimedAmount)

		err = st.UpdateClaimedAmount(store, alice, 1, abi.NewTokenAmount(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")

		// Claimed may not regress or exceed the grant.
		require.Error(t, st.UpdateClaimedAmount(store, alice, 0, abi.NewTokenAmount(100)))
		require.Error(t, st.UpdateClaimedAmount(store, alice, 0, abi.NewTokenAmount(1001)))
	})

	t.Run("remove", func(t *testing.T) {
		store := newTestStore(t)
		st := newTestState(t, store, 2000)
		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, alice, 1000, 250)))

		removed, err := st.RemoveVestingAccounts(store, alice)
		require.NoError(t, err)
		require.Len(t, removed, 1)

		_, err = st.RemoveVestingAccounts(store, alice)
		require.Error(t, err)
		assert.IsType(t, vesting.ErrNoVestingAccount{}, err)
	})

	t.Run("collect recipients is sorted", func(t *testing.T) {
		store := newTestStore(t)
		st := newTestState(t, store, 2000)
		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, bob, 100, 0)))
		require.NoError(t, st.PutVestingAccount(store, mustMakeAccount(t, owner, alice, 100, 0)))

		recipients, err := st.CollectRecipients(store)
		require.NoError(t, err)
		require.Len(t, recipients, 2)
		assert.Equal(t, alice, recipients[0])
		assert.Equal(t, bob, recipients[1])
	})
}
