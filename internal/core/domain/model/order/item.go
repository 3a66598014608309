package order

import (
	"fmt"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
)

// Item is a line item owned exclusively by its order. Deleting it from the
// order's collection deletes the item; it has no independent lifecycle.
//
// Item invariants:
//   - Product id and name are required
//   - Unit price is strictly positive
//   - Quantity is at least 1
//   - Discount never exceeds the subtotal
//
// Subtotal and final amount are derived on demand rather than cached, so
// they can never go stale after a quantity or price change.
type Item struct {
	// id is the surrogate identifier assigned by the store; zero until saved.
	id uint64

	productID       string
	productName     string
	productSKU      string
	productImageURL string

	unitPrice      kernel.Money
	quantity       int
	discountAmount kernel.Money
	taxAmount      kernel.Money

	notes string

	isConstructed bool
}

// NewItem creates a line item with validation.
// Product id, product name, a positive unit price and a quantity of at least
// one are required; everything else is set through the optional setters.
func NewItem(productID, productName string, unitPrice kernel.Money, quantity int) (*Item, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("productName")
	}
	if !unitPrice.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice.String()),
		)
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	return &Item{
		productID:     productID,
		productName:   productName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// maxItemQuantity bounds a single line item; orders above this are almost
// certainly input errors.
const maxItemQuantity = 1_000_000

// RestoreItem rebuilds an item from persistence without validation.
func RestoreItem(
	id uint64,
	productID, productName, productSKU, productImageURL string,
	unitPrice kernel.Money,
	quantity int,
	discountAmount, taxAmount kernel.Money,
	notes string,
) *Item {
	return &Item{
		id:              id,
		productID:       productID,
		productName:     productName,
		productSKU:      productSKU,
		productImageURL: productImageURL,
		unitPrice:       unitPrice,
		quantity:        quantity,
		discountAmount:  discountAmount,
		taxAmount:       taxAmount,
		notes:           notes,
		isConstructed:   true,
	}
}

// ID returns the surrogate identifier assigned by the store, zero for unsaved items.
func (i *Item) ID() uint64 { return i.id }

// ProductID returns the product identifier.
func (i *Item) ProductID() string { return i.productID }

// ProductName returns the product display name.
func (i *Item) ProductName() string { return i.productName }

// ProductSKU returns the product SKU, empty if unset.
func (i *Item) ProductSKU() string { return i.productSKU }

// ProductImageURL returns the product image URL, empty if unset.
func (i *Item) ProductImageURL() string { return i.productImageURL }

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int { return i.quantity }

// DiscountAmount returns the discount applied to the line.
func (i *Item) DiscountAmount() kernel.Money { return i.discountAmount }

// TaxAmount returns the tax applied to the line.
func (i *Item) TaxAmount() kernel.Money { return i.taxAmount }

// Notes returns the free-text notes for the line.
func (i *Item) Notes() string { return i.notes }

// SetProductSKU sets the optional product SKU.
func (i *Item) SetProductSKU(sku string) { i.productSKU = sku }

// SetProductImageURL sets the optional product image URL.
func (i *Item) SetProductImageURL(url string) { i.productImageURL = url }

// SetNotes sets the free-text notes for the line.
func (i *Item) SetNotes(notes string) { i.notes = notes }

// ApplyDiscount sets the line discount.
// Fails if the discount exceeds the current subtotal.
func (i *Item) ApplyDiscount(discount kernel.Money) error {
	if subtotal := i.Subtotal(); discount.GreaterThan(subtotal) {
		return errs.NewValueIsOutOfRangeError("discountAmount", discount.String(), "0", subtotal.String())
	}
	i.discountAmount = discount
	return nil
}

// ApplyTax sets the line tax.
func (i *Item) ApplyTax(tax kernel.Money) {
	i.taxAmount = tax
}

// Subtotal returns unit price times quantity.
func (i *Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// FinalAmount returns subtotal minus discount plus tax.
func (i *Item) FinalAmount() kernel.Money {
	return i.Subtotal().Sub(i.discountAmount).Add(i.taxAmount)
}

// Validate ensures the item was created through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}
