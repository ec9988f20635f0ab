package purchase

import (
	"fmt"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("LineItem must be created via NewLineItem")

// LineItem is an immutable snapshot of one card position inside a purchase:
// which card, how many copies, and the unit price agreed at checkout time.
// Snapshotting protects the purchase from later catalog edits.
type LineItem struct {
	cardID    kernel.UUID
	cardName  string
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewLineItem creates a validated line item. Quantity must be positive and the
// card name must not be empty.
func NewLineItem(cardID kernel.UUID, cardName string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := cardID.Validate(); err != nil {
		return LineItem{}, err
	}
	if cardName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("cardName")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		cardID:        cardID,
		cardName:      cardName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// CardID returns the catalog identifier of the card.
func (li LineItem) CardID() kernel.UUID {
	return li.cardID
}

// CardName returns the card name as it read at checkout time.
func (li LineItem) CardName() string {
	return li.cardName
}

// Quantity returns the number of copies purchased.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-copy price agreed at checkout time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns quantity times unit price.
func (li LineItem) Total() (kernel.Money, error) {
	if err := li.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return li.unitPrice.MultiplyBy(int64(li.quantity))
}

// Validate ensures the LineItem was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}
