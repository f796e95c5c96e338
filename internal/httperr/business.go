package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error codes returned by the domain and use-case layers. Handlers map
// them to HTTP statuses through FromError; everything unknown is an
// opaque internal failure.
const (
	CodeDuplicateWeekday   = "duplicate_weekday"
	CodeIncompleteWeek     = "incomplete_week"
	CodeTooManyDays        = "too_many_days"
	CodeEmptyUpdate        = "empty_update"
	CodeInvalidWindowOrder = "invalid_window_order"
	CodeOverlappingWindows = "overlapping_windows"
	CodeInvalidDatetime    = "invalid_datetime"

	CodeRestaurantNotFound = "restaurant_not_found"
	CodeScheduleNotFound   = "schedule_not_found"
	CodePageNotFound       = "page_not_found"

	CodeAlreadyRegistered = "already_registered"
	CodeAlreadyScheduled  = "already_scheduled"
)

var messages = map[string]string{
	CodeDuplicateWeekday:   "two schedule entries share the same weekday",
	CodeIncompleteWeek:     "there must be opening hours for every day of the week",
	CodeTooManyDays:        "a schedule set cannot have more than 7 days",
	CodeEmptyUpdate:        "no schedule entries provided",
	CodeInvalidWindowOrder: "opening time must be earlier than closing time",
	CodeOverlappingWindows: "second window cannot start before the first one closes",
	CodeInvalidDatetime:    "datetime must be a valid RFC 3339 timestamp",
	CodeRestaurantNotFound: "restaurant not found",
	CodeScheduleNotFound:   "schedule not found",
	CodePageNotFound:       "the requested page does not exist",
	CodeAlreadyRegistered:  "restaurant is already registered",
	CodeAlreadyScheduled:   "opening hours are already registered for this restaurant",
}

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// FromError translates a use-case error into an HTTP response. This is
// the single place where the error taxonomy becomes status codes;
// unknown errors never leak details to the caller.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
		Internal(c, "internal_error", "internal server error")
		return
	}

	msg, ok := messages[be.Code]
	if !ok {
		msg = be.Code
	}

	switch be.Code {
	case CodeRestaurantNotFound, CodeScheduleNotFound, CodePageNotFound:
		NotFound(c, be.Code, msg)
	case CodeAlreadyRegistered, CodeAlreadyScheduled:
		Conflict(c, be.Code, msg)
	default:
		BadRequest(c, be.Code, msg)
	}
}
