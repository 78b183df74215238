package vesting

import (
	"fmt"
	"sort"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	errors "github.com/pkg/errors"
	xerrors "golang.org/x/xerrors"

	autil "github.com/vestlabs/vesting-actors/actors/util"
	"github.com/vestlabs/vesting-actors/actors/util/adt"
)

// State holds the vesting actor's persistent record: the funding ledger
// and the root of the registry of per-recipient vesting accounts.
type State struct {
	// Admin may withdraw unallocated funds and (with managers) grant rewards.
	Admin addr.Address
	// Managers may grant rewards and deregister accounts. Never empty.
	Managers []addr.Address

	// Denomination of the token deposited at construction. All grants and
	// payouts are in this denomination.
	Denom string
	// Amount deposited at construction. Never changes.
	TotalDeposited abi.TokenAmount
	// Portion of the deposit not reserved by any active grant.
	UnallocatedAmount abi.TokenAmount

	// Registry of vesting accounts: Multimap of recipient address to an
	// insertion-ordered array of VestingAccount.
	VestingAccounts cid.Cid
}

// VestingAccount is a single grant to a recipient. A recipient may hold
// several accounts, created by separate grants.
type VestingAccount struct {
	// Owner is the admin or manager that granted the reward.
	Owner     addr.Address
	Recipient addr.Address

	Denom         string
	VestingAmount abi.TokenAmount
	CliffAmount   abi.TokenAmount
	Schedule      VestingSchedule

	// Cumulative amount already claimed by the recipient.
	// Invariant: 0 <= ClaimedAmount <= VestedAmount(now) <= VestingAmount.
	ClaimedAmount abi.TokenAmount
}

// ErrZeroVestingAmount is returned for a grant of zero tokens.
var ErrZeroVestingAmount = errors.New("cannot make zero token vesting account")

// ErrNothingToWithdraw is returned when the unallocated balance is zero.
var ErrNothingToWithdraw = errors.New("nothing to withdraw")

// ErrInsufficientUnallocated is returned when a batch of grants asks for
// more than the unallocated balance.
type ErrInsufficientUnallocated struct {
	Available abi.TokenAmount
	Requested abi.TokenAmount
}

func (e ErrInsufficientUnallocated) Error() string {
	return fmt.Sprintf("insufficient funds for all rewards: %v available but trying to allocate %v", e.Available, e.Requested)
}

// ErrNoVestingAccount is returned when a recipient has no accounts.
type ErrNoVestingAccount struct {
	Recipient addr.Address
}

func (e ErrNoVestingAccount) Error() string {
	return fmt.Sprintf("user %v does not have a vesting account", e.Recipient)
}

// MakeVestingAccount validates the grant amounts against the schedule and
// returns a fresh account with nothing claimed.
func MakeVestingAccount(owner, recipient addr.Address, denom string, vestingAmount, cliffAmount abi.TokenAmount,
	schedule VestingSchedule) (*VestingAccount, error) {
	if vestingAmount.Sign() <= 0 {
		return nil, ErrZeroVestingAmount
	}
	if cliffAmount.Sign() < 0 || cliffAmount.GreaterThan(vestingAmount) {
		return nil, ErrExcessiveAmount{CliffAmount: cliffAmount, VestingAmount: vestingAmount}
	}
	return &VestingAccount{
		Owner:         owner,
		Recipient:     recipient,
		Denom:         denom,
		VestingAmount: vestingAmount,
		CliffAmount:   cliffAmount,
		Schedule:      schedule,
		ClaimedAmount: big.Zero(),
	}, nil
}

// VestedAmount returns the cumulative amount vested at epoch `now`.
func (a *VestingAccount) VestedAmount(now abi.ChainEpoch) abi.TokenAmount {
	return a.Schedule.VestedAmount(now, a.VestingAmount, a.CliffAmount)
}

// ClaimableAmount returns the vested amount not yet claimed at epoch `now`.
func (a *VestingAccount) ClaimableAmount(now abi.ChainEpoch) abi.TokenAmount {
	return big.Sub(a.VestedAmount(now), a.ClaimedAmount)
}

// FullyClaimed reports whether the whole grant has been claimed.
func (a *VestingAccount) FullyClaimed() bool {
	return a.ClaimedAmount.Equals(a.VestingAmount)
}

// ConstructState initializes state with an empty registry and the whole
// deposit unallocated.
func ConstructState(store adt.Store, admin addr.Address, managers []addr.Address, denom string,
	deposited abi.TokenAmount) (*State, error) {
	emptyMultimap, err := adt.MakeEmptyMultimap(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty registry: %w", err)
	}
	return &State{
		Admin:             admin,
		Managers:          managers,
		Denom:             denom,
		TotalDeposited:    deposited,
		UnallocatedAmount: deposited,
		VestingAccounts:   emptyMultimap.Root(),
	}, nil
}

// AuthorizedParties returns the admin and all managers, the set allowed to
// grant rewards and deregister accounts.
func (st *State) AuthorizedParties() []addr.Address {
	parties := make([]addr.Address, 0, len(st.Managers)+1)
	parties = append(parties, st.Admin)
	parties = append(parties, st.Managers...)
	return parties
}

//
// Ledger
//

// Reserve moves `amount` from the unallocated balance into grants.
// The full amount is reserved or none of it.
func (st *State) Reserve(amount abi.TokenAmount) error {
	autil.AssertMsg(amount.Sign() >= 0, "negative reservation %v", amount)
	if amount.GreaterThan(st.UnallocatedAmount) {
		return ErrInsufficientUnallocated{Available: st.UnallocatedAmount, Requested: amount}
	}
	st.UnallocatedAmount = big.Sub(st.UnallocatedAmount, amount)
	return nil
}

// Release returns `amount` from a cancelled grant to the unallocated balance.
func (st *State) Release(amount abi.TokenAmount) {
	autil.AssertMsg(amount.Sign() >= 0, "negative release %v", amount)
	st.UnallocatedAmount = big.Add(st.UnallocatedAmount, amount)
	autil.AssertMsg(st.UnallocatedAmount.LessThanEqual(st.TotalDeposited),
		"unallocated %v exceeds deposit %v", st.UnallocatedAmount, st.TotalDeposited)
}

// WithdrawUnallocated removes up to `requested` from the unallocated
// balance, clamping to what is available. Errors when nothing is available.
func (st *State) WithdrawUnallocated(requested abi.TokenAmount) (abi.TokenAmount, error) {
	if st.UnallocatedAmount.Sign() == 0 {
		return big.Zero(), ErrNothingToWithdraw
	}
	amount := big.Min(requested, st.UnallocatedAmount)
	st.UnallocatedAmount = big.Sub(st.UnallocatedAmount, amount)
	return amount, nil
}

//
// Registry
//

// PutVestingAccount appends an account to the recipient's list.
func (st *State) PutVestingAccount(store adt.Store, account *VestingAccount) error {
	accounts := adt.AsMultimap(store, st.VestingAccounts)
	if err := accounts.Add(adt.AddrKey(account.Recipient), account); err != nil {
		return xerrors.Errorf("failed to put vesting account for %v: %w", account.Recipient, err)
	}
	st.VestingAccounts = accounts.Root()
	return nil
}

// LoadVestingAccounts returns the recipient's accounts in insertion order,
// or an empty slice when there are none.
func (st *State) LoadVestingAccounts(store adt.Store, recipient addr.Address) ([]*VestingAccount, error) {
	accounts := adt.AsMultimap(store, st.VestingAccounts)
	var out []*VestingAccount
	var account VestingAccount
	err := accounts.ForEach(adt.AddrKey(recipient), &account, func(i int64) error {
		cpy := account
		out = append(out, &cpy)
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to load vesting accounts for %v: %w", recipient, err)
	}
	return out, nil
}

// SetVestingAccounts replaces the recipient's list wholesale. An empty list
// removes the recipient from the registry.
func (st *State) SetVestingAccounts(store adt.Store, recipient addr.Address, list []*VestingAccount) error {
	accounts := adt.AsMultimap(store, st.VestingAccounts)
	if err := accounts.RemoveAll(adt.AddrKey(recipient)); err != nil && err != adt.ErrKeyNotFound {
		return xerrors.Errorf("failed to clear vesting accounts for %v: %w", recipient, err)
	}
	for _, account := range list {
		if err := accounts.Add(adt.AddrKey(recipient), account); err != nil {
			return xerrors.Errorf("failed to store vesting account for %v: %w", recipient, err)
		}
	}
	st.VestingAccounts = accounts.Root()
	return nil
}

// UpdateClaimedAmount overwrites the claimed amount of the account at
// `index` in the recipient's list.
func (st *State) UpdateClaimedAmount(store adt.Store, recipient addr.Address, index int64, claimed abi.TokenAmount) error {
	list, err := st.LoadVestingAccounts(store, recipient)
	if err != nil {
		return err
	}
	if index < 0 || index >= int64(len(list)) {
		return xerrors.Errorf("vesting account index %d does not exist for %v", index, recipient)
	}
	if claimed.LessThan(list[index].ClaimedAmount) || claimed.GreaterThan(list[index].VestingAmount) {
		return xerrors.Errorf("claimed amount %v out of range for account %d of %v", claimed, index, recipient)
	}
	list[index].ClaimedAmount = claimed
	return st.SetVestingAccounts(store, recipient, list)
}

// RemoveVestingAccounts removes and returns all of the recipient's
// accounts. Errors with ErrNoVestingAccount when there are none.
func (st *State) RemoveVestingAccounts(store adt.Store, recipient addr.Address) ([]*VestingAccount, error) {
	list, err := st.LoadVestingAccounts(store, recipient)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoVestingAccount{Recipient: recipient}
	}
	accounts := adt.AsMultimap(store, st.VestingAccounts)
	if err := accounts.RemoveAll(adt.AddrKey(recipient)); err != nil {
		return nil, xerrors.Errorf("failed to remove vesting accounts for %v: %w", recipient, err)
	}
	st.VestingAccounts = accounts.Root()
	return list, nil
}

// CollectRecipients returns every recipient with at least one account,
// sorted lexicographically by address bytes. The underlying HAMT iterates
// in hashed-key order, so listing callers need the explicit sort.
func (st *State) CollectRecipients(store adt.Store) ([]addr.Address, error) {
	accounts := adt.AsMultimap(store, st.VestingAccounts)
	keys, err := accounts.CollectKeys()
	if err != nil {
		return nil, xerrors.Errorf("failed to collect registry keys: %w", err)
	}
	sort.Strings(keys)
	out := make([]addr.Address, 0, len(keys))
	for _, k := range keys {
		a, err := addr.NewFromBytes([]byte(k))
		if err != nil {
			return nil, xerrors.Errorf("registry key is not an address: %w", err)
		}
		out = append(out, a)
	}
	return out, nil
}
