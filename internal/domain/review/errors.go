package review

import "errors"

var (
	ErrReviewNotFound = errors.New("performance review not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)
