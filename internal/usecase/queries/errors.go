package queries

import (
	"waste-dashboard/internal/pkg/errs"
)

var (
	ErrBranchRequired      = errs.New("branch id required")
	ErrUpstreamUnavailable = errs.New("upstream unavailable")
	ErrAuditUnavailable    = errs.New("override audit unavailable")
)
