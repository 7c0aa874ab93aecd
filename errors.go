package sso

import (
	"github.com/xgzlucario/sso/internal/pkg"
)

// ErrAllocation is returned when a heap buffer cannot be allocated. The
// String involved is left unchanged.
var ErrAllocation = pkg.ErrAllocation
