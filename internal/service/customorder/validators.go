package customorder

import (
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxPhotos            = 10
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func validateCreate(buyerID string, create entities.CustomOrderCreate, now time.Time) error {
	if create.SellerID != nil && (!isValidID(*create.SellerID) || *create.SellerID == buyerID) {
		return ErrInvalidSeller
	}

	title := strings.TrimSpace(create.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return ErrInvalidTitle
	}
	if utf8.RuneCountInString(create.Description) > maxDescriptionLength {
		return ErrInvalidDescription
	}

	if len(create.Photos) > maxPhotos {
		return ErrInvalidPhotos
	}
	for _, photo := range create.Photos {
		if strings.TrimSpace(photo) == "" {
			return ErrInvalidPhotos
		}
	}

	if create.MaxPrice != nil && !lifecycle.IsValidAmount(*create.MaxPrice) {
		return ErrInvalidMaxPrice
	}
	if !isValidCurrency(create.Currency) {
		return ErrInvalidCurrency
	}

	// срок либо конкретный, либо "как можно скорее"
	if create.IsASAP == (create.DeliveryDeadline != nil) {
		return ErrInvalidDeadline
	}
	if create.DeliveryDeadline != nil && !create.DeliveryDeadline.After(now) {
		return ErrInvalidDeadline
	}
	return nil
}
