package util

import (
	"fmt"

	"github.com/filecoin-project/go-state-types/exitcode"
)

type abort struct {
	code exitcode.ExitCode
	msg  string
}

// AssertMsg signals a violated ledger invariant, a condition that should
// never happen. Execution halts and the enclosing state change does not
// commit.
func AssertMsg(b bool, format string, a ...interface{}) {
	if !b {
		panic(abort{exitcode.ErrForbidden, fmt.Sprintf(format, a...)})
	}
}
