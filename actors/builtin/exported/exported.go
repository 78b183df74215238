package exported

import (
	"github.com/vestlabs/vesting-actors/actors/builtin/vesting"
	"github.com/vestlabs/vesting-actors/actors/runtime"
)

// BuiltinActors returns all actor implementations in this module, keyed for
// registration with a VM's invoker table.
func BuiltinActors() []runtime.VMActor {
	return []runtime.VMActor{
		vesting.Actor{},
	}
}
