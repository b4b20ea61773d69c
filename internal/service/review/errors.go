package review

import (
	"fmt"

	"marketplace/internal/lifecycle"
)

var (
	ErrInvalidOrderID = fmt.Errorf("%w: invalid order id", lifecycle.ErrInvalidInput)
	ErrWrongReviewee  = fmt.Errorf("%w: reviewee must be the counterpart of the order", lifecycle.ErrInvalidInput)
)
