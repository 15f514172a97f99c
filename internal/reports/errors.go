package reports

import (
	"fmt"

	"restaurant-insights/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeInvalidTimeframe    = "RPT_1000"
	codeInvalidRestaurantID = "RPT_1001"
	codeNoTrafficData       = "RPT_2000"

	codeInternalSampleSourceFailed = "RPT_9000"
)

func errInvalidTimeframe(timeframe string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimeframe,
		fmt.Sprintf("invalid timeframe %q: must be one of last_7_days, last_14_days, last_30_days, last_90_days", timeframe), cause)
}

func errInvalidRestaurantID(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRestaurantID, "restaurantID is required and must match [A-Za-z0-9_-]{1,64}", cause)
}

// errNoTrafficData returns an error when the requested range holds no samples at all.
func errNoTrafficData(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoTrafficData, "no traffic data in the requested timeframe", cause)
}

// errInternalSampleSourceFailed returns an error when samples cannot be loaded.
func errInternalSampleSourceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSampleSourceFailed, fmt.Errorf("sampleSourceFailed: %w", cause))
}
