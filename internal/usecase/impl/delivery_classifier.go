package impl

import (
	"linkup/internal/domain/service"
)

// classifyTokenFailure classifies one failed token inside an accepted multicast.
// The provider also reports unknown-error per token for tokens it could not route; those are pruned too.
func classifyTokenFailure(code service.ErrorCode) service.ErrorClass {
	switch code {
	case service.ErrorCodeInvalidToken, service.ErrorCodeUnregistered, service.ErrorCodeUnknown:
		return service.ErrorClassPermanentToken
	default:
		return service.ErrorClassOther
	}
}

// classifyBatchFailure classifies a multicast that failed as a whole.
func classifyBatchFailure(code service.ErrorCode) service.ErrorClass {
	if code == service.ErrorCodeUnknown {
		return service.ErrorClassTransientProvider
	}

	return service.ErrorClassOther
}

// classifySingleFailure classifies a failed single-token send.
func classifySingleFailure(code service.ErrorCode) service.ErrorClass {
	switch code {
	case service.ErrorCodeInvalidToken, service.ErrorCodeUnregistered:
		return service.ErrorClassPermanentToken
	default:
		return service.ErrorClassOther
	}
}
