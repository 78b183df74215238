package vesting

import (
	"fmt"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"

	"github.com/vestlabs/vesting-actors/actors/builtin"
	"github.com/vestlabs/vesting-actors/actors/runtime"
	"github.com/vestlabs/vesting-actors/actors/util/adt"
)

// The vesting actor holds a single-denomination deposit and releases it to
// recipients through per-account cliff-then-linear schedules. The admin and
// managers grant rewards from the unallocated balance; recipients claim
// vested tokens; the admin may withdraw whatever remains unallocated.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.RewardUsers,
		3:                         a.Claim,
		4:                         a.DeregisterVestingAccounts,
		5:                         a.Withdraw,
		6:                         a.VestingAccount,
		7:                         a.VestingAccounts,
		8:                         a.ListVestingAccounts,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.VestingActorCodeID
}

func (a Actor) IsSingleton() bool {
	return false
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ runtime.VMActor = Actor{}

// Pagination bounds for the account queries.
const (
	DefaultAccountsLimit = 10
	MaxAccountsLimit     = 30
)

// Coin is a funding entry: an amount of a named token denomination.
type Coin struct {
	Denom  string
	Amount abi.TokenAmount
}

type ConstructorParams struct {
	Admin    addr.Address
	Managers []addr.Address
	// Funding must hold exactly one coin, whose amount must equal the
	// value transferred with the construction message.
	Funding []Coin
}

func (a Actor) Constructor(rt runtime.Runtime, params *ConstructorParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	builtin.RequireParam(rt, len(params.Funding) > 0, "must deposit some token")
	builtin.RequireParam(rt, len(params.Funding) == 1, "must deposit exactly one type of token")
	deposit := params.Funding[0]
	builtin.RequireParam(rt, deposit.Denom != "", "denom cannot be empty")
	builtin.RequireParam(rt, deposit.Amount.Sign() > 0, "must deposit some token")
	builtin.RequireParam(rt, rt.Message().ValueReceived().Equals(deposit.Amount),
		"deposit value %v does not match funding amount %v", rt.Message().ValueReceived(), deposit.Amount)

	builtin.RequireParam(rt, params.Admin != addr.Undef, "admin cannot be empty")
	builtin.RequireParam(rt, len(params.Managers) > 0, "managers cannot be empty")
	for _, m := range params.Managers {
		builtin.RequireParam(rt, m != addr.Undef, "manager address cannot be empty")
	}

	st, err := ConstructState(adt.AsStore(rt), params.Admin, params.Managers, deposit.Denom, deposit.Amount)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.StateCreate(st)
	return nil
}

type RewardUserRequest struct {
	Recipient     addr.Address
	VestingAmount abi.TokenAmount
	CliffAmount   abi.TokenAmount
}

type RewardUsersParams struct {
	// Schedule applies to every reward in the batch.
	Schedule VestingSchedule
	Rewards  []RewardUserRequest
}

type RegisteredReward struct {
	Address       addr.Address
	VestingAmount abi.TokenAmount
}

type RewardUsersReturn struct {
	Registered []RegisteredReward
}

// RewardUsers grants a batch of vesting accounts sharing one schedule,
// reserving the grand total against the unallocated balance. The batch is
// atomic: any invalid entry or an insufficient balance aborts the whole
// call with no state change.
func (a Actor) RewardUsers(rt runtime.Runtime, params *RewardUsersParams) *RewardUsersReturn {
	var st State
	rt.StateReadonly(&st)
	rt.ValidateImmediateCallerIs(st.AuthorizedParties()...)

	builtin.RequireParam(rt, len(params.Rewards) > 0, "no rewards to register")
	schedule, err := MakeVestingSchedule(params.Schedule.StartTime, params.Schedule.CliffTime, params.Schedule.EndTime)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "invalid vesting schedule")

	owner := rt.Message().Caller()
	registered := make([]RegisteredReward, 0, len(params.Rewards))

	rt.StateTransaction(&st, func() {
		store := adt.AsStore(rt)

		accounts := make([]*VestingAccount, 0, len(params.Rewards))
		total := big.Zero()
		for _, reward := range params.Rewards {
			account, err := MakeVestingAccount(owner, reward.Recipient, st.Denom, reward.VestingAmount, reward.CliffAmount, schedule)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "invalid reward for %v", reward.Recipient)
			accounts = append(accounts, account)
			total = big.Add(total, reward.VestingAmount)
		}

		err := st.Reserve(total)
		builtin.RequireNoErr(rt, err, exitcode.ErrInsufficientFunds, "failed to reserve rewards")

		for _, account := range accounts {
			err = st.PutVestingAccount(store, account)
			builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to register vesting account for %v", account.Recipient)
			registered = append(registered, RegisteredReward{Address: account.Recipient, VestingAmount: account.VestingAmount})
		}
	})

	for _, r := range registered {
		rt.Log(rtt.INFO, "register_vesting_account address=%v vesting_amount=%v method=reward_users", r.Address, r.VestingAmount)
	}
	return &RewardUsersReturn{Registered: registered}
}

type ClaimedReward struct {
	VestingAmount abi.TokenAmount
	VestedAmount  abi.TokenAmount
	ClaimAmount   abi.TokenAmount
}

type ClaimReturn struct {
	Claims       []ClaimedReward
	TotalClaimed abi.TokenAmount
}

// Claim pays the caller everything vested and unclaimed across all of their
// accounts, as a single transfer. Accounts with nothing claimable are
// skipped; accounts fully claimed past their end epoch are removed from the
// registry. A caller with nothing claimable gets a successful no-op.
func (a Actor) Claim(rt runtime.Runtime, _ *abi.EmptyValue) *ClaimReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	recipient := rt.Message().Caller()
	now := rt.CurrEpoch()

	var st State
	claims := make([]ClaimedReward, 0)
	totalClaimed := big.Zero()

	rt.StateTransaction(&st, func() {
		store := adt.AsStore(rt)
		accounts, err := st.LoadVestingAccounts(store, recipient)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load vesting accounts")
		if len(accounts) == 0 {
			return
		}

		remaining := make([]*VestingAccount, 0, len(accounts))
		for _, account := range accounts {
			vested := account.VestedAmount(now)
			claimable := big.Sub(vested, account.ClaimedAmount)
			if claimable.Sign() > 0 {
				account.ClaimedAmount = big.Add(account.ClaimedAmount, claimable)
				totalClaimed = big.Add(totalClaimed, claimable)
				claims = append(claims, ClaimedReward{
					VestingAmount: account.VestingAmount,
					VestedAmount:  vested,
					ClaimAmount:   claimable,
				})
			}
			if account.FullyClaimed() && now >= account.Schedule.EndTime {
				continue // fully paid out, drop from the registry
			}
			remaining = append(remaining, account)
		}

		err = st.SetVestingAccounts(store, recipient, remaining)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to update vesting accounts")
	})

	if totalClaimed.Sign() > 0 {
		_, code := rt.Send(recipient, builtin.MethodSend, nil, totalClaimed)
		builtin.RequireSuccess(rt, code, "failed to send claimed tokens to %v", recipient)
	}
	for _, c := range claims {
		rt.Log(rtt.INFO, "claim address=%v vesting_amount=%v vested_amount=%v claim_amount=%v",
			recipient, c.VestingAmount, c.VestedAmount, c.ClaimAmount)
	}
	return &ClaimReturn{Claims: claims, TotalClaimed: totalClaimed}
}

type DeregisterVestingAccountsParams struct {
	Addresses []addr.Address
}

type DeregisterResult struct {
	UserAddress addr.Address
	Success     bool
	ErrorMsg    string
}

type DeregisterVestingAccountsReturn struct {
	Results []DeregisterResult
}

// DeregisterVestingAccounts cancels all accounts of each given recipient.
// Per recipient: the vested-but-unclaimed portion is paid out to them, and
// the unvested remainder returns to the unallocated balance. Recipients
// without accounts produce a failed result entry, not an abort.
func (a Actor) DeregisterVestingAccounts(rt runtime.Runtime, params *DeregisterVestingAccountsParams) *DeregisterVestingAccountsReturn {
	var st State
	rt.StateReadonly(&st)
	rt.ValidateImmediateCallerIs(st.AuthorizedParties()...)

	builtin.RequireParam(rt, len(params.Addresses) > 0, "no addresses to deregister")
	now := rt.CurrEpoch()

	type settlement struct {
		to     addr.Address
		amount abi.TokenAmount
	}
	results := make([]DeregisterResult, 0, len(params.Addresses))
	settlements := make([]settlement, 0, len(params.Addresses))

	rt.StateTransaction(&st, func() {
		store := adt.AsStore(rt)
		for _, target := range params.Addresses {
			accounts, err := st.RemoveVestingAccounts(store, target)
			if err != nil {
				var noAccount ErrNoVestingAccount
				if !xerrors.As(err, &noAccount) {
					builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to deregister %v", target)
				}
				results = append(results, DeregisterResult{
					UserAddress: target,
					Success:     false,
					ErrorMsg:    fmt.Sprintf("failed to deregister vesting account: %s", err),
				})
				continue
			}

			payout := big.Zero()
			for _, account := range accounts {
				vested := account.VestedAmount(now)
				payout = big.Add(payout, big.Sub(vested, account.ClaimedAmount))
				st.Release(big.Sub(account.VestingAmount, vested))
			}
			if payout.Sign() > 0 {
				settlements = append(settlements, settlement{to: target, amount: payout})
			}
			results = append(results, DeregisterResult{UserAddress: target, Success: true})
		}
	})

	for _, s := range settlements {
		_, code := rt.Send(s.to, builtin.MethodSend, nil, s.amount)
		builtin.RequireSuccess(rt, code, "failed to settle vested tokens to %v", s.to)
	}
	for _, r := range results {
		rt.Log(rtt.INFO, "deregister_vesting_account address=%v success=%v", r.UserAddress, r.Success)
	}
	return &DeregisterVestingAccountsReturn{Results: results}
}

type WithdrawParams struct {
	Amount abi.TokenAmount
}

type WithdrawReturn struct {
	Amount            abi.TokenAmount
	UnallocatedAmount abi.TokenAmount
}

// Withdraw sends unallocated tokens to the admin, clamping the requested
// amount to what is available. A withdrawal from an empty unallocated
// balance aborts.
func (a Actor) Withdraw(rt runtime.Runtime, params *WithdrawParams) *WithdrawReturn {
	var st State
	rt.StateReadonly(&st)
	rt.ValidateImmediateCallerIs(st.Admin)

	builtin.RequireParam(rt, params.Amount.Sign() > 0, "withdraw amount must be positive")

	var withdrawn abi.TokenAmount
	rt.StateTransaction(&st, func() {
		amount, err := st.WithdrawUnallocated(params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrInsufficientFunds, "failed to withdraw")
		withdrawn = amount
	})

	_, code := rt.Send(st.Admin, builtin.MethodSend, nil, withdrawn)
	builtin.RequireSuccess(rt, code, "failed to send withdrawn tokens to %v", st.Admin)

	rt.Log(rtt.INFO, "withdraw recipient=%v amount=%v unallocated_amount=%v", st.Admin, withdrawn, st.UnallocatedAmount)
	return &WithdrawReturn{Amount: withdrawn, UnallocatedAmount: st.UnallocatedAmount}
}

// VestingData is the queryable view of one account at the current epoch.
type VestingData struct {
	Owner           addr.Address
	Denom           string
	VestingAmount   abi.TokenAmount
	CliffAmount     abi.TokenAmount
	Schedule        VestingSchedule
	ClaimedAmount   abi.TokenAmount
	VestedAmount    abi.TokenAmount
	ClaimableAmount abi.TokenAmount
}

type VestingAccountParams struct {
	Address addr.Address
	// StartAfter skips that many leading accounts; Limit bounds the page
	// size (default DefaultAccountsLimit, capped at MaxAccountsLimit).
	StartAfter int64
	Limit      int64
}

type VestingAccountReturn struct {
	Address  addr.Address
	Vestings []VestingData
}

// VestingAccount returns one recipient's accounts, in insertion order, with
// vested and claimable amounts computed at the current epoch. A recipient
// with no accounts yields an empty list.
func (a Actor) VestingAccount(rt runtime.Runtime, params *VestingAccountParams) *VestingAccountReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.StateReadonly(&st)

	ret, err := queryRecipient(adt.AsStore(rt), &st, params.Address, rt.CurrEpoch(), params.StartAfter, params.Limit)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to query vesting account")
	return ret
}

type VestingAccountsParams struct {
	Addresses []addr.Address
}

type VestingAccountsReturn struct {
	Accounts []VestingAccountReturn
}

// VestingAccounts returns the accounts of several recipients, preserving
// the order of the request.
func (a Actor) VestingAccounts(rt runtime.Runtime, params *VestingAccountsParams) *VestingAccountsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.StateReadonly(&st)

	store := adt.AsStore(rt)
	now := rt.CurrEpoch()
	out := make([]VestingAccountReturn, 0, len(params.Addresses))
	for _, target := range params.Addresses {
		ret, err := queryRecipient(store, &st, target, now, 0, int64(MaxAccountsLimit))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to query vesting account for %v", target)
		out = append(out, *ret)
	}
	return &VestingAccountsReturn{Accounts: out}
}

type ListVestingAccountsParams struct {
	// StartAfter, when set, restricts the listing to recipients strictly
	// after it in lexicographic address order.
	StartAfter *addr.Address
	Limit      int64
}

type ListVestingAccountsReturn struct {
	Accounts []VestingAccountReturn
}

// ListVestingAccounts pages through every recipient in the registry in
// lexicographic address order.
func (a Actor) ListVestingAccounts(rt runtime.Runtime, params *ListVestingAccountsParams) *ListVestingAccountsReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.StateReadonly(&st)

	store := adt.AsStore(rt)
	recipients, err := st.CollectRecipients(store)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to list registry")

	limit := clampLimit(params.Limit)
	now := rt.CurrEpoch()
	out := make([]VestingAccountReturn, 0, limit)
	for _, recipient := range recipients {
		if params.StartAfter != nil && addrKeyString(recipient) <= addrKeyString(*params.StartAfter) {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		ret, err := queryRecipient(store, &st, recipient, now, 0, int64(MaxAccountsLimit))
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to query vesting account for %v", recipient)
		out = append(out, *ret)
	}
	return &ListVestingAccountsReturn{Accounts: out}
}

func queryRecipient(store adt.Store, st *State, recipient addr.Address, now abi.ChainEpoch,
	startAfter, limit int64) (*VestingAccountReturn, error) {
	accounts, err := st.LoadVestingAccounts(store, recipient)
	if err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	vestings := make([]VestingData, 0, limit)
	for i, account := range accounts {
		if int64(i) < startAfter {
			continue
		}
		if int64(len(vestings)) >= limit {
			break
		}
		vested := account.VestedAmount(now)
		vestings = append(vestings, VestingData{
			Owner:           account.Owner,
			Denom:           account.Denom,
			VestingAmount:   account.VestingAmount,
			CliffAmount:     account.CliffAmount,
			Schedule:        account.Schedule,
			ClaimedAmount:   account.ClaimedAmount,
			VestedAmount:    vested,
			ClaimableAmount: big.Sub(vested, account.ClaimedAmount),
		})
	}
	return &VestingAccountReturn{Address: recipient, Vestings: vestings}, nil
}

func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultAccountsLimit
	}
	if limit > MaxAccountsLimit {
		return MaxAccountsLimit
	}
	return limit
}

func addrKeyString(a addr.Address) string {
	return string(a.Bytes())
}
