package part

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
)

const (
	// MaxNameLength is the longest part name accepted.
	MaxNameLength = 100
	// DefaultLowStockThreshold is used when the caller does not supply a threshold.
	DefaultLowStockThreshold = 5
)

var (
	// ErrPartIsNotConstructed is returned when a Part did not come from NewPart or RestorePart.
	ErrPartIsNotConstructed = errors.New("Part must be created via NewPart constructor")
)

// Details holds the descriptive attributes of a part. None of them take part in
// stock or pricing rules.
type Details struct {
	Name         string
	Description  string
	Category     string
	Manufacturer string
	PartNumber   string
}

// Part is the inventory aggregate root. It tracks how many units of a spare part
// the shop holds and the current unit price.
//
// Invariants:
//   - stock is never negative
//   - IsAvailable() == (stock > 0) after every mutation
//   - price is strictly positive
type Part struct {
	id            kernel.UUID
	details       Details
	price         kernel.Money
	stock         int
	isConstructed bool
}

// NewPart creates a part with a fresh identity. All validation failures are
// reported together.
func NewPart(details Details, price kernel.Money, stock int) (*Part, error) {
	return RestorePart(kernel.NewUUID(), details, price, stock)
}

// RestorePart rebuilds a part from persisted state. It applies the same rules as NewPart.
func RestorePart(id kernel.UUID, details Details, price kernel.Money, stock int) (*Part, error) {
	p := &Part{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(details),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Part was built by a constructor.
func (p *Part) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartIsNotConstructed
	}
	return nil
}

// IsEqual compares parts by identity.
func (p *Part) IsEqual(other *Part) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the part's unique identifier.
func (p *Part) ID() kernel.UUID {
	return p.id
}

// Name returns the catalogue name of the part.
func (p *Part) Name() string {
	return p.details.Name
}

// Details returns the descriptive fields of the part.
func (p *Part) Details() Details {
	return p.details
}

// Price returns the current unit price.
func (p *Part) Price() kernel.Money {
	return p.price
}

// Stock returns the units on hand. It is never negative.
func (p *Part) Stock() int {
	return p.stock
}

// IsAvailable reports whether at least one unit is on hand.
func (p *Part) IsAvailable() bool {
	return p.stock > 0
}

// InStock is the attach precondition: a unit can be taken for an order.
func (p *Part) InStock() bool {
	return p.IsAvailable()
}

// IsLowStock reports whether the stock is at or below the threshold.
func (p *Part) IsLowStock(threshold int) bool {
	return p.stock <= threshold
}

// TotalValue is price multiplied by units on hand.
func (p *Part) TotalValue() kernel.Money {
	return p.price.Mul(p.stock)
}

// AvailabilityStatus renders the availability line shown to shop staff.
func (p *Part) AvailabilityStatus() string {
	if !p.IsAvailable() {
		return "OUT_OF_STOCK"
	}
	return fmt.Sprintf("IN_STOCK - %d units available", p.stock)
}

// Increase adds quantity units to the stock. quantity must be positive and the
// resulting stock must still fit in an int.
func (p *Part) Increase(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if quantity > math.MaxInt-p.stock {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt-p.stock)
	}
	p.stock += quantity
	return nil
}

// Decrease takes quantity units out of stock. It fails with an insufficient stock
// error rather than letting the counter go negative.
func (p *Part) Decrease(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if quantity > p.stock {
		return errs.NewInsufficientStockError(p.id.String(), quantity, p.stock)
	}
	p.stock -= quantity
	return nil
}

// SetStock overwrites the stock counter.
func (p *Part) SetStock(quantity int) error {
	return p.setStock(quantity)
}

// ChangePrice replaces the unit price.
func (p *Part) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Part) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Part) setDetails(details Details) error {
	details.Name = strings.TrimSpace(details.Name)
	details.Category = strings.TrimSpace(details.Category)

	var err error
	switch {
	case details.Name == "":
		err = errs.NewValueIsRequiredError("name")
	case len([]rune(details.Name)) > MaxNameLength:
		err = errs.NewValueIsInvalidErrorWithCause(
			"name is invalid",
			fmt.Errorf("length %d exceeds %d", len([]rune(details.Name)), MaxNameLength),
		)
	}

	if details.Category == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("category"))
	}
	if err != nil {
		return err
	}

	p.details = details
	return nil
}

func (p *Part) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	p.price = price
	return nil
}

func (p *Part) setStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is less than 0", quantity),
		)
	}
	p.stock = quantity
	return nil
}
