package eval

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the errors registered by this package
const ModuleName = "vecmath"

var (
	ErrUnknownOperation = errorsmod.Register(ModuleName, 2, "unknown operation")
	ErrInvalidArgCount  = errorsmod.Register(ModuleName, 3, "invalid argument count")
	ErrInvalidVector    = errorsmod.Register(ModuleName, 4, "invalid vector")
	ErrInvalidScalar    = errorsmod.Register(ModuleName, 5, "invalid scalar")
)
