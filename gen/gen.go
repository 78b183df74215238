package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/vestlabs/vesting-actors/actors/builtin/vesting"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.VestingSchedule{},
		vesting.VestingAccount{},
		// method params and returns
		vesting.Coin{},
		vesting.ConstructorParams{},
		vesting.RewardUserRequest{},
		vesting.RewardUsersParams{},
		vesting.RegisteredReward{},
		vesting.RewardUsersReturn{},
		vesting.ClaimedReward{},
		vesting.ClaimReturn{},
		vesting.DeregisterVestingAccountsParams{},
		vesting.DeregisterResult{},
		vesting.DeregisterVestingAccountsReturn{},
		vesting.WithdrawParams{},
		vesting.WithdrawReturn{},
		vesting.VestingData{},
		vesting.VestingAccountParams{},
		vesting.VestingAccountReturn{},
		vesting.VestingAccountsParams{},
		vesting.VestingAccountsReturn{},
		vesting.ListVestingAccountsParams{},
		vesting.ListVestingAccountsReturn{},
	); err != nil {
		panic(err)
	}
}
