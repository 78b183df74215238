package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

var MethodsVesting = struct {
	Constructor               abi.MethodNum
	RewardUsers               abi.MethodNum
	Claim                     abi.MethodNum
	DeregisterVestingAccounts abi.MethodNum
	Withdraw                  abi.MethodNum
	VestingAccount            abi.MethodNum
	VestingAccounts           abi.MethodNum
	ListVestingAccounts       abi.MethodNum
}{
	MethodConstructor, 2, 3, 4, 5, 6, 7, 8,
}
