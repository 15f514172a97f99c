package ingestors

import (
	"fmt"

	"restaurant-insights/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"

	codeInternalSampleBatchStoreFailed = "ING_9000"
	codeInternalTrafficPublisherFailed = "ING_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errSampleBatchAlreadyProcessed returns an error when a batch with the same ID was already accepted.
func errSampleBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "sample batch already processed", cause)
}

// errInternalSampleBatchStoreFailed returns an error when a sample batch store operation fails.
func errInternalSampleBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSampleBatchStoreFailed, fmt.Errorf("sampleBatchStoreFailed: %w", cause))
}

// errInternalTrafficPublisherFailed returns an error when traffic events cannot be published.
func errInternalTrafficPublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTrafficPublisherFailed, fmt.Errorf("trafficPublisherFailed: %w", cause))
}
