package lifecycle

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Payload - дополнительные данные запроса на переход.
type Payload struct {
	// ActorID нужен только для привязки продавца к открытому индивидуальному заказу.
	ActorID         string
	TrackingNumber  *string
	Message         *string
	FinalPrice      *decimal.Decimal
	DeliveryAddress *string
	Notes           *string
}

func (p Payload) Has(input Input) bool {
	switch input {
	case InputTrackingNumber:
		return nonBlank(p.TrackingNumber)
	case InputMessage:
		return nonBlank(p.Message)
	case InputFinalPrice:
		return p.FinalPrice != nil
	case InputDeliveryAddress:
		return nonBlank(p.DeliveryAddress)
	default:
		return false
	}
}

func (p Payload) missing(required []Input) []Input {
	var result []Input
	for _, input := range required {
		if !p.Has(input) {
			result = append(result, input)
		}
	}
	return result
}

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
