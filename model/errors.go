package model

import "errors"

// error codes returned by the github service
// they are used as is in API responses, so keep them stable
var (
	ErrRateLimitReached = errors.New("RATE_LIMIT_REACHED")
	ErrRateLimiterError = errors.New("RATE_LIMITER_ERROR")
	ErrInvalidDataFound = errors.New("INVALID_DATA_FOUND")
	ErrFetchError       = errors.New("FETCH_ERROR")
	ErrUnknownPage      = errors.New("UNKNOWN_PAGE")
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(errReason error) APIError {
	switch {
	case errors.Is(errReason, ErrRateLimitReached):
		return APIError{
			Code:    ErrRateLimitReached.Error(),
			Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
		}

	case errors.Is(errReason, ErrUnknownPage):
		return APIError{
			Code:    ErrUnknownPage.Error(),
			Message: "the requested page does not exist",
		}

	case errReason == nil:
		return APIError{
			Code:    "GENERIC_ERROR",
			Message: "internal server error. contact our support with the reason code for assistance",
		}

	default:
		return APIError{
			Code:    errReason.Error(),
			Message: "internal server error. contact our support with the reason code for assistance",
		}
	}
}
