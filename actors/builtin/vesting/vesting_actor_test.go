package vesting_test

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestlabs/vesting-actors/actors/builtin"
	"github.com/vestlabs/vesting-actors/actors/builtin/vesting"
	"github.com/vestlabs/vesting-actors/actors/util/adt"
	"github.com/vestlabs/vesting-actors/support/mock"
	tutils "github.com/vestlabs/vesting-actors/support/testing"
)

func TestExports(t *testing.T) {
	exports := vesting.Actor{}.Exports()
	require.Len(t, exports, 9)
	assert.Nil(t, exports[0])
	for i := 1; i < len(exports); i++ {
		assert.NotNil(t, exports[i], "method %d not exported", i)
	}
	assert.Equal(t, builtin.VestingActorCodeID, vesting.Actor{}.Code())
	assert.False(t, vesting.Actor{}.IsSingleton())
}

type actorHarness struct {
	vesting.Actor
	t *testing.T

	receiver addr.Address
	admin    addr.Address
	manager  addr.Address
}

func newHarness(t *testing.T) *actorHarness {
	return &actorHarness{
		Actor:    vesting.Actor{},
		t:        t,
		receiver: tutils.NewIDAddr(t, 100),
		admin:    tutils.NewIDAddr(t, 101),
		manager:  tutils.NewIDAddr(t, 102),
	}
}

func (h *actorHarness) builder(deposit int64) *mock.RuntimeBuilder {
	amount := abi.NewTokenAmount(deposit)
	return mock.NewBuilder(context.Background(), h.receiver).
		WithCaller(builtin.InitActorAddr, builtin.InitActorCodeID).
		WithBalance(amount, amount)
}

func (h *actorHarness) constructAndVerify(rt *mock.Runtime, deposit int64) {
	params := vesting.ConstructorParams{
		Admin:    h.admin,
		Managers: []addr.Address{h.manager},
		Funding:  []vesting.Coin{{Denom: "uusd", Amount: abi.NewTokenAmount(deposit)}},
	}
	rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
	ret := h.Constructor(rt, &params)
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *actorHarness) authorized() []addr.Address {
	return []addr.Address{h.admin, h.manager}
}

// Grants one reward over the standard 100/105/110 schedule.
func (h *actorHarness) grant(rt *mock.Runtime, caller, recipient addr.Address, amount, cliff int64) *vesting.RewardUsersReturn {
	schedule, err := vesting.MakeVestingSchedule(100, 105, 110)
	require.NoError(h.t, err)
	params := vesting.RewardUsersParams{
		Schedule: schedule,
		Rewards: []vesting.RewardUserRequest{
			{Recipient: recipient, VestingAmount: abi.NewTokenAmount(amount), CliffAmount: abi.NewTokenAmount(cliff)},
		},
	}
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(h.authorized()...)
	ret := h.RewardUsers(rt, &params)
	rt.Verify()
	return ret
}

func (h *actorHarness) claim(rt *mock.Runtime, recipient addr.Address) *vesting.ClaimReturn {
	rt.SetCaller(recipient, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	ret := h.Claim(rt, &abi.EmptyValue{})
	rt.Verify()
	return ret
}

func (h *actorHarness) loadState(rt *mock.Runtime) *vesting.State {
	var st vesting.State
	rt.GetState(&st)
	return &st
}

func (h *actorHarness) loadAccounts(rt *mock.Runtime, recipient addr.Address) []*vesting.VestingAccount {
	accounts, err := h.loadState(rt).LoadVestingAccounts(adt.AsStore(rt), recipient)
	require.NoError(h.t, err)
	return accounts
}

func TestConstruction(t *testing.T) {
	h := newHarness(t)
	alice := tutils.NewIDAddr(t, 103)

	t.Run("simple construction", func(t *testing.T) {
		rt := h.builder(2000).Build(t)
		h.constructAndVerify(rt, 2000)

		st := h.loadState(rt)
		assert.Equal(t, h.admin, st.Admin)
		assert.Equal(t, []addr.Address{h.manager}, st.Managers)
		assert.Equal(t, "uusd", st.Denom)
		assert.Equal(t, abi.NewTokenAmount(2000), st.TotalDeposited)
		assert.Equal(t, abi.NewTokenAmount(2000), st.UnallocatedAmount)

		recipients, err := st.CollectRecipients(adt.AsStore(rt))
		require.NoError(t, err)
		assert.Empty(t, recipients)
	})

	t.Run("fails with no funding", func(t *testing.T) {
		rt := h.builder(2000).Build(t)
		params := vesting.ConstructorParams{Admin: h.admin, Managers: []addr.Address{h.manager}}
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "must deposit some token", func() {
			h.Constructor(rt, &params)
		})
		rt.Verify()
	})

	t.Run("fails with two coins", func(t *testing.T) {
		rt := h.builder(2000).Build(t)
		params := vesting.ConstructorParams{
			Admin:    h.admin,
			Managers: []addr.Address{h.manager},
			Funding: []vesting.Coin{
				{Denom: "uusd", Amount: abi.NewTokenAmount(1000)},
				{Denom: "uosmo", Amount: abi.NewTokenAmount(1000)},
			},
		}
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "must deposit exactly one type of token", func() {
			h.Constructor(rt, &params)
		})
		rt.Verify()
	})

	t.Run("fails with zero deposit", func(t *testing.T) {
		rt := h.builder(0).Build(t)
		params := vesting.ConstructorParams{
			Admin:    h.admin,
			Managers: []addr.Address{h.manager},
			Funding:  []vesting.Coin{{Denom: "uusd", Amount: big.Zero()}},
		}
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "must deposit some token", func() {
			h.Constructor(rt, &params)
		})
		rt.Verify()
	})

	t.Run("fails when deposit does not match message value", func(t *testing.T) {
		rt := h.builder(2000).Build(t)
		rt.SetReceived(abi.NewTokenAmount(1000))
		params := vesting.ConstructorParams{
			Admin:    h.admin,
			Managers: []addr.Address{h.manager},
			Funding:  []vesting.Coin{{Denom: "uusd", Amount: abi.NewTokenAmount(2000)}},
		}
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "does not match funding amount", func() {
			h.Constructor(rt, &params)
		})
		rt.Verify()
	})

	t.Run("fails with empty managers", func(t *testing.T) {
		rt := h.builder(2000).Build(t)
		params := vesting.ConstructorParams{
			Admin:   h.admin,
			Funding: []vesting.Coin{{Denom: "uusd", Amount: abi.NewTokenAmount(2000)}},
		}
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "managers cannot be empty", func() {
			h.Constructor(rt, &params)
		})
		rt.Verify()
	})

	t.Run("fails when caller is not the init actor", func(t *testing.T) {
		rt := h.builder(2000).Build(t)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		params := vesting.ConstructorParams{
			Admin:    h.admin,
			Managers: []addr.Address{h.manager},
			Funding:  []vesting.Coin{{Denom: "uusd", Amount: abi.NewTokenAmount(2000)}},
		}
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			h.Constructor(rt, &params)
		})
		rt.Verify()
	})
}

func TestRewardUsers(t *testing.T) {
	alice := tutils.NewIDAddr(t, 103)
	bob := tutils.NewIDAddr(t, 104)

	setup := func(t *testing.T) (*mock.Runtime, *actorHarness) {
		h := newHarness(t)
		rt := h.builder(2000).Build(t)
		h.constructAndVerify(rt, 2000)
		return rt, h
	}

	t.Run("admin grants a reward", func(t *testing.T) {
		rt, h := setup(t)
		ret := h.grant(rt, h.admin, alice, 1000, 250)

		require.Len(t, ret.Registered, 1)
		assert.Equal(t, alice, ret.Registered[0].Address)
		assert.Equal(t, abi.NewTokenAmount(1000), ret.Registered[0].VestingAmount)

		st := h.loadState(rt)
		assert.Equal(t, abi.NewTokenAmount(1000), st.UnallocatedAmount)

		accounts := h.loadAccounts(rt, alice)
		require.Len(t, accounts, 1)
		assert.Equal(t, h.admin, accounts[0].Owner)
		assert.Equal(t, big.Zero(), accounts[0].ClaimedAmount)
	})

	t.Run("manager grants a reward", func(t *testing.T) {
		rt, h := setup(t)
		h.grant(rt, h.manager, alice, 500, 0)
		assert.Equal(t, abi.NewTokenAmount(1500), h.loadState(rt).UnallocatedAmount)
		assert.Equal(t, h.manager, h.loadAccounts(rt, alice)[0].Owner)
	})

	t.Run("unauthorized caller is rejected", func(t *testing.T) {
		rt, h := setup(t)
		schedule, err := vesting.MakeVestingSchedule(100, 105, 110)
		require.NoError(t, err)
		params := vesting.RewardUsersParams{
			Schedule: schedule,
			Rewards:  []vesting.RewardUserRequest{{Recipient: alice, VestingAmount: abi.NewTokenAmount(100), CliffAmount: big.Zero()}},
		}
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			h.RewardUsers(rt, &params)
		})
		rt.Verify()
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "no rewards", func() {
			h.RewardUsers(rt, &vesting.RewardUsersParams{Schedule: vesting.VestingSchedule{StartTime: 100, CliffTime: 105, EndTime: 110}})
		})
		rt.Verify()
	})

	t.Run("invalid schedule is rejected", func(t *testing.T) {
		rt, h := setup(t)
		params := vesting.RewardUsersParams{
			Schedule: vesting.VestingSchedule{StartTime: 110, CliffTime: 105, EndTime: 100},
			Rewards:  []vesting.RewardUserRequest{{Recipient: alice, VestingAmount: abi.NewTokenAmount(100), CliffAmount: big.Zero()}},
		}
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "invalid vesting schedule", func() {
			h.RewardUsers(rt, &params)
		})
		rt.Verify()
	})

	t.Run("zero vesting amount is rejected", func(t *testing.T) {
		rt, h := setup(t)
		params := vesting.RewardUsersParams{
			Schedule: vesting.VestingSchedule{StartTime: 100, CliffTime: 105, EndTime: 110},
			Rewards:  []vesting.RewardUserRequest{{Recipient: alice, VestingAmount: big.Zero(), CliffAmount: big.Zero()}},
		}
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "zero token vesting account", func() {
			h.RewardUsers(rt, &params)
		})
		rt.Verify()
	})

	t.Run("cliff amount exceeding vesting amount is rejected", func(t *testing.T) {
		rt, h := setup(t)
		params := vesting.RewardUsersParams{
			Schedule: vesting.VestingSchedule{StartTime: 100, CliffTime: 105, EndTime: 110},
			Rewards:  []vesting.RewardUserRequest{{Recipient: alice, VestingAmount: abi.NewTokenAmount(100), CliffAmount: abi.NewTokenAmount(200)}},
		}
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "less than or equal to vesting_amount", func() {
			h.RewardUsers(rt, &params)
		})
		rt.Verify()
	})

	t.Run("batch exceeding unallocated funds aborts atomically", func(t *testing.T) {
		rt, h := setup(t)
		params := vesting.RewardUsersParams{
			Schedule: vesting.VestingSchedule{StartTime: 100, CliffTime: 105, EndTime: 110},
			Rewards: []vesting.RewardUserRequest{
				{Recipient: alice, VestingAmount: abi.NewTokenAmount(1500), CliffAmount: big.Zero()},
				{Recipient: bob, VestingAmount: abi.NewTokenAmount(600), CliffAmount: big.Zero()},
			},
		}
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbortContainsMessage(exitcode.ErrInsufficientFunds, "2000 available but trying to allocate 2100", func() {
			h.RewardUsers(rt, &params)
		})
		rt.Verify()

		// No partial registration and no reservation.
		st := h.loadState(rt)
		assert.Equal(t, abi.NewTokenAmount(2000), st.UnallocatedAmount)
		assert.Empty(t, h.loadAccounts(rt, alice))
	})

	t.Run("duplicate recipients get independent accounts", func(t *testing.T) {
		rt, h := setup(t)
		schedule, err := vesting.MakeVestingSchedule(100, 105, 110)
		require.NoError(t, err)
		params := vesting.RewardUsersParams{
			Schedule: schedule,
			Rewards: []vesting.RewardUserRequest{
				{Recipient: alice, VestingAmount: abi.NewTokenAmount(300), CliffAmount: big.Zero()},
				{Recipient: alice, VestingAmount: abi.NewTokenAmount(200), CliffAmount: big.Zero()},
			},
		}
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		ret := h.RewardUsers(rt, &params)
		rt.Verify()

		require.Len(t, ret.Registered, 2)
		accounts := h.loadAccounts(rt, alice)
		require.Len(t, accounts, 2)
		assert.Equal(t, abi.NewTokenAmount(300), accounts[0].VestingAmount)
		assert.Equal(t, abi.NewTokenAmount(200), accounts[1].VestingAmount)
		assert.Equal(t, abi.NewTokenAmount(1500), h.loadState(rt).UnallocatedAmount)
	})
}

func TestClaim(t *testing.T) {
	alice := tutils.NewIDAddr(t, 103)

	setup := func(t *testing.T) (*mock.Runtime, *actorHarness) {
		h := newHarness(t)
		rt := h.builder(2000).Build(t)
		h.constructAndVerify(rt, 2000)
		h.grant(rt, h.admin, alice, 1000, 250)
		return rt, h
	}

	t.Run("nothing claimable before the cliff", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetEpoch(104)
		ret := h.claim(rt, alice)
		assert.Empty(t, ret.Claims)
		assert.Equal(t, big.Zero(), ret.TotalClaimed)
	})

	t.Run("cliff amount releases at the cliff", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetEpoch(105)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(alice, builtin.MethodSend, nil, abi.NewTokenAmount(250), nil, exitcode.Ok)
		ret := h.Claim(rt, &abi.EmptyValue{})
		rt.Verify()

		assert.Equal(t, abi.NewTokenAmount(250), ret.TotalClaimed)
		require.Len(t, ret.Claims, 1)
		assert.Equal(t, abi.NewTokenAmount(1000), ret.Claims[0].VestingAmount)
		assert.Equal(t, abi.NewTokenAmount(250), ret.Claims[0].VestedAmount)
		assert.Equal(t, abi.NewTokenAmount(250), ret.Claims[0].ClaimAmount)

		accounts := h.loadAccounts(rt, alice)
		require.Len(t, accounts, 1)
		assert.Equal(t, abi.NewTokenAmount(250), accounts[0].ClaimedAmount)
	})

	t.Run("claim is idempotent at one epoch", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetEpoch(105)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(alice, builtin.MethodSend, nil, abi.NewTokenAmount(250), nil, exitcode.Ok)
		h.Claim(rt, &abi.EmptyValue{})
		rt.Verify()

		ret := h.claim(rt, alice)
		assert.Empty(t, ret.Claims)
		assert.Equal(t, big.Zero(), ret.TotalClaimed)
	})

	t.Run("fully claimed account is pruned after the end", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetEpoch(105)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(alice, builtin.MethodSend, nil, abi.NewTokenAmount(250), nil, exitcode.Ok)
		h.Claim(rt, &abi.EmptyValue{})
		rt.Verify()

		rt.SetEpoch(110)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(alice, builtin.MethodSend, nil, abi.NewTokenAmount(750), nil, exitcode.Ok)
		ret := h.Claim(rt, &abi.EmptyValue{})
		rt.Verify()

		assert.Equal(t, abi.NewTokenAmount(750), ret.TotalClaimed)
		assert.Empty(t, h.loadAccounts(rt, alice))

		recipients, err := h.loadState(rt).CollectRecipients(adt.AsStore(rt))
		require.NoError(t, err)
		assert.Empty(t, recipients)
	})

	t.Run("recipient without accounts gets a no-op success", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetEpoch(110)
		// A signable non-ID caller passes type validation the same way.
		stranger := tutils.NewSECP256K1Addr(t, "stranger")
		ret := h.claim(rt, stranger)
		assert.Empty(t, ret.Claims)
		assert.Equal(t, big.Zero(), ret.TotalClaimed)
	})
}

func TestDeregisterVestingAccounts(t *testing.T) {
	alice := tutils.NewIDAddr(t, 103)
	bob := tutils.NewIDAddr(t, 104)

	setup := func(t *testing.T) (*mock.Runtime, *actorHarness) {
		h := newHarness(t)
		rt := h.builder(2000).Build(t)
		h.constructAndVerify(rt, 2000)
		h.grant(rt, h.admin, alice, 1000, 250)
		return rt, h
	}

	t.Run("mixed batch settles and reports per address", func(t *testing.T) {
		rt, h := setup(t)

		// Claim the cliff amount first.
		rt.SetEpoch(105)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(alice, builtin.MethodSend, nil, abi.NewTokenAmount(250), nil, exitcode.Ok)
		h.Claim(rt, &abi.EmptyValue{})
		rt.Verify()

		// At epoch 107 vested is 550: payout 300, unvested remainder 450.
		rt.SetEpoch(107)
		rt.SetCaller(h.manager, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectSend(alice, builtin.MethodSend, nil, abi.NewTokenAmount(300), nil, exitcode.Ok)
		ret := h.DeregisterVestingAccounts(rt, &vesting.DeregisterVestingAccountsParams{Addresses: []addr.Address{alice, bob}})
		rt.Verify()

		require.Len(t, ret.Results, 2)
		assert.Equal(t, alice, ret.Results[0].UserAddress)
		assert.True(t, ret.Results[0].Success)
		assert.Empty(t, ret.Results[0].ErrorMsg)
		assert.Equal(t, bob, ret.Results[1].UserAddress)
		assert.False(t, ret.Results[1].Success)
		assert.Contains(t, ret.Results[1].ErrorMsg, "does not have a vesting account")

		st := h.loadState(rt)
		assert.Equal(t, abi.NewTokenAmount(1450), st.UnallocatedAmount)
		assert.Empty(t, h.loadAccounts(rt, alice))
	})

	t.Run("deregister before the cliff releases the whole grant", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetEpoch(103)
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		ret := h.DeregisterVestingAccounts(rt, &vesting.DeregisterVestingAccountsParams{Addresses: []addr.Address{alice}})
		rt.Verify()

		require.Len(t, ret.Results, 1)
		assert.True(t, ret.Results[0].Success)
		assert.Equal(t, abi.NewTokenAmount(2000), h.loadState(rt).UnallocatedAmount)
	})

	t.Run("unauthorized caller is rejected", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetCaller(alice, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			h.DeregisterVestingAccounts(rt, &vesting.DeregisterVestingAccountsParams{Addresses: []addr.Address{alice}})
		})
		rt.Verify()
	})

	t.Run("empty address list is rejected", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.authorized()...)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "no addresses", func() {
			h.DeregisterVestingAccounts(rt, &vesting.DeregisterVestingAccountsParams{})
		})
		rt.Verify()
	})
}

func TestWithdraw(t *testing.T) {
	alice := tutils.NewIDAddr(t, 103)

	setup := func(t *testing.T) (*mock.Runtime, *actorHarness) {
		h := newHarness(t)
		rt := h.builder(2000).Build(t)
		h.constructAndVerify(rt, 2000)
		h.grant(rt, h.admin, alice, 1000, 250)
		return rt, h
	}

	t.Run("withdraw clamps to the unallocated balance", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.admin)
		rt.ExpectSend(h.admin, builtin.MethodSend, nil, abi.NewTokenAmount(1000), nil, exitcode.Ok)
		ret := h.Withdraw(rt, &vesting.WithdrawParams{Amount: abi.NewTokenAmount(1500)})
		rt.Verify()

		assert.Equal(t, abi.NewTokenAmount(1000), ret.Amount)
		assert.True(t, ret.UnallocatedAmount.IsZero())
		assert.True(t, h.loadState(rt).UnallocatedAmount.IsZero())

		// A second withdrawal finds nothing and aborts.
		rt.ExpectValidateCallerAddr(h.admin)
		rt.ExpectAbortContainsMessage(exitcode.ErrInsufficientFunds, "nothing to withdraw", func() {
			h.Withdraw(rt, &vesting.WithdrawParams{Amount: abi.NewTokenAmount(1)})
		})
		rt.Verify()
	})

	t.Run("manager may not withdraw", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetCaller(h.manager, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.admin)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			h.Withdraw(rt, &vesting.WithdrawParams{Amount: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		rt, h := setup(t)
		rt.SetCaller(h.admin, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(h.admin)
		rt.ExpectAbortContainsMessage(exitcode.ErrIllegalArgument, "must be positive", func() {
			h.Withdraw(rt, &vesting.WithdrawParams{Amount: big.Zero()})
		})
		rt.Verify()
	})
}

func TestQueries(t *testing.T) {
	alice := tutils.NewIDAddr(t, 103)
	bob := tutils.NewIDAddr(t, 104)

	setup := func(t *testing.T) (*mock.Runtime, *actorHarness) {
		h := newHarness(t)
		rt := h.builder(2000).Build(t)
		h.constructAndVerify(rt, 2000)
		return rt, h
	}

	t.Run("vesting account reflects live amounts", func(t *testing.T) {
		rt, h := setup(t)
		h.grant(rt, h.admin, alice, 1000, 250)
		rt.SetEpoch(106)

		rt.ExpectValidateCallerAny()
		ret := h.VestingAccount(rt, &vesting.VestingAccountParams{Address: alice})
		rt.Verify()

		assert.Equal(t, alice, ret.Address)
		require.Len(t, ret.Vestings, 1)
		data := ret.Vestings[0]
		assert.Equal(t, h.admin, data.Owner)
		assert.Equal(t, "uusd", data.Denom)
		assert.Equal(t, abi.NewTokenAmount(1000), data.VestingAmount)
		assert.Equal(t, abi.NewTokenAmount(250), data.CliffAmount)
		assert.Equal(t, abi.NewTokenAmount(400), data.VestedAmount)
		assert.Equal(t, abi.NewTokenAmount(400), data.ClaimableAmount)
		assert.Equal(t, big.Zero(), data.ClaimedAmount)
	})

	t.Run("unknown recipient yields an empty list", func(t *testing.T) {
		rt, h := setup(t)
		rt.ExpectValidateCallerAny()
		ret := h.VestingAccount(rt, &vesting.VestingAccountParams{Address: bob})
		rt.Verify()
		assert.Equal(t, bob, ret.Address)
		assert.Empty(t, ret.Vestings)
	})

	t.Run("per recipient pagination", func(t *testing.T) {
		rt, h := setup(t)
		h.grant(rt, h.admin, alice, 100, 0)
		h.grant(rt, h.admin, alice, 200, 0)
		h.grant(rt, h.admin, alice, 300, 0)

		rt.ExpectValidateCallerAny()
		ret := h.VestingAccount(rt, &vesting.VestingAccountParams{Address: alice, StartAfter: 1, Limit: 1})
		rt.Verify()

		require.Len(t, ret.Vestings, 1)
		assert.Equal(t, abi.NewTokenAmount(200), ret.Vestings[0].VestingAmount)
	})

	t.Run("multi-recipient query preserves request order", func(t *testing.T) {
		rt, h := setup(t)
		h.grant(rt, h.admin, alice, 100, 0)
		h.grant(rt, h.admin, bob, 200, 0)

		rt.ExpectValidateCallerAny()
		ret := h.VestingAccounts(rt, &vesting.VestingAccountsParams{Addresses: []addr.Address{bob, alice}})
		rt.Verify()

		require.Len(t, ret.Accounts, 2)
		assert.Equal(t, bob, ret.Accounts[0].Address)
		assert.Equal(t, alice, ret.Accounts[1].Address)
	})

	t.Run("listing pages recipients in address order", func(t *testing.T) {
		rt, h := setup(t)
		h.grant(rt, h.admin, bob, 200, 0)
		h.grant(rt, h.admin, alice, 100, 0)

		rt.ExpectValidateCallerAny()
		ret := h.ListVestingAccounts(rt, &vesting.ListVestingAccountsParams{})
		rt.Verify()
		require.Len(t, ret.Accounts, 2)
		assert.Equal(t, alice, ret.Accounts[0].Address)
		assert.Equal(t, bob, ret.Accounts[1].Address)

		rt.ExpectValidateCallerAny()
		ret = h.ListVestingAccounts(rt, &vesting.ListVestingAccountsParams{Limit: 1})
		rt.Verify()
		require.Len(t, ret.Accounts, 1)
		assert.Equal(t, alice, ret.Accounts[0].Address)

		rt.ExpectValidateCallerAny()
		ret = h.ListVestingAccounts(rt, &vesting.ListVestingAccountsParams{StartAfter: &alice})
		rt.Verify()
		require.Len(t, ret.Accounts, 1)
		assert.Equal(t, bob, ret.Accounts[0].Address)
	})
}
