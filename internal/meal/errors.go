package meal

import "fmt"

// ErrorKind identifies one member of the closed domain error set.
type ErrorKind int

const (
	// ErrorKindUnknown is the fallback for errors with no usable description.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindNoConnection means the network was unreachable.
	ErrorKindNoConnection
	// ErrorKindTimeout means the request deadline elapsed.
	ErrorKindTimeout
	// ErrorKindServerError means the upstream answered with a non-2xx status.
	ErrorKindServerError
	// ErrorKindInvalidResponse means the upstream payload could not be decoded.
	ErrorKindInvalidResponse
	// ErrorKindMealNotFound means a lookup by id matched nothing.
	ErrorKindMealNotFound
	// ErrorKindNoMealsFound means a listing came back empty.
	ErrorKindNoMealsFound
	// ErrorKindNetworkError covers any other described transport failure.
	ErrorKindNetworkError
	// ErrorKindCancelled means the caller cancelled the request. Kept distinct
	// from Unknown even though neither is shown as a user-facing error.
	ErrorKindCancelled
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNoConnection:
		return "no_connection"
	case ErrorKindTimeout:
		return "timeout"
	case ErrorKindServerError:
		return "server_error"
	case ErrorKindInvalidResponse:
		return "invalid_response"
	case ErrorKindMealNotFound:
		return "meal_not_found"
	case ErrorKindNoMealsFound:
		return "no_meals_found"
	case ErrorKindNetworkError:
		return "network_error"
	case ErrorKindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error is the domain error surfaced by the retrieval service. StatusCode is
// set only for ServerError; Message only for NetworkError.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindServerError:
		return fmt.Sprintf("meal: server error (status %d)", e.StatusCode)
	case ErrorKindNetworkError:
		return fmt.Sprintf("meal: network error: %s", e.Message)
	default:
		return "meal: " + e.Kind.String()
	}
}

// Is makes errors.Is match on kind, so callers can compare against a
// prototype like &Error{Kind: ErrorKindTimeout}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
