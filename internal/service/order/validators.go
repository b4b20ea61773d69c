package order

import (
	"strings"

	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
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

func validateCreate(buyerID string, create entities.OrderCreate) error {
	if !isValidID(create.SellerID) || create.SellerID == buyerID {
		return ErrInvalidSeller
	}
	if !isValidID(create.ProductID) {
		return ErrInvalidProduct
	}
	if create.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !lifecycle.IsValidAmount(create.Price) {
		return ErrInvalidPrice
	}
	if !isValidCurrency(create.Currency) {
		return ErrInvalidCurrency
	}
	if strings.TrimSpace(create.DeliveryAddress) == "" {
		return ErrInvalidAddress
	}
	return nil
}
