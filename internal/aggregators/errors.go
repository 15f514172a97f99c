package aggregators

import (
	"fmt"

	"restaurant-insights/internal/shared/svcerrors"
)

const (
	codeInternalDailyTrafficRollupFailed = "AGG_9000"
	codeInternalDailyTrafficStoreFailed  = "AGG_9001"
)

// errInternalDailyTrafficRollupFailed returns an error when an event cannot be merged into its daily record.
func errInternalDailyTrafficRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDailyTrafficRollupFailed, fmt.Errorf("dailyTrafficRollupFailed: %w", cause))
}

// errInternalDailyTrafficStoreFailed returns an error when a daily traffic store operation fails.
func errInternalDailyTrafficStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDailyTrafficStoreFailed, fmt.Errorf("dailyTrafficStoreFailed: %w", cause))
}
