package services

import (
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/pkg/errs"
)

// PartBinder moves single units of stock between the inventory and service orders.
//
// Business rules:
//   - only Open orders take or give back parts
//   - attaching needs a unit in stock even when the part is already attached
//   - a part is attached at most once, so a repeated attach consumes nothing
//   - detaching a part that is not attached returns nothing to stock
//   - cancelling returns one unit for every attached part
type PartBinder struct{}

// NewPartBinder creates a stateless PartBinder.
func NewPartBinder() PartBinder {
	return PartBinder{}
}

// Attach binds p to o and takes one unit out of stock. It reports false for a
// repeated attach, which leaves both aggregates untouched.
func (PartBinder) Attach(o *order.ServiceOrder, p *part.Part) (bool, error) {
	if err := validate(o, p); err != nil {
		return false, err
	}
	if err := o.ValidateMutable("attach part to"); err != nil {
		return false, err
	}
	if !p.InStock() {
		return false, errs.NewInsufficientStockError(p.ID().String(), 1, p.Stock())
	}
	if o.HasPart(p.ID()) {
		return false, nil
	}

	if err := p.Decrease(1); err != nil {
		return false, err
	}
	return o.AttachPart(p.ID())
}

// Detach unbinds p from o and puts its unit back. It reports false when p was not attached.
func (PartBinder) Detach(o *order.ServiceOrder, p *part.Part) (bool, error) {
	if err := validate(o, p); err != nil {
		return false, err
	}

	removed, err := o.DetachPart(p.ID())
	if err != nil || !removed {
		return false, err
	}
	return true, p.Increase(1)
}

// Cancel cancels o and returns one unit to each attached part. parts must contain
// every part attached to o; extra entries are ignored.
func (PartBinder) Cancel(o *order.ServiceOrder, parts []*part.Part) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.ValidateMutable("cancel"); err != nil {
		return err
	}

	byID, err := indexParts(o, parts)
	if err != nil {
		return err
	}

	released, err := o.Cancel()
	if err != nil {
		return err
	}
	for _, id := range released {
		if err = byID[id].Increase(1); err != nil {
			return err
		}
	}
	return nil
}

func validate(o *order.ServiceOrder, p *part.Part) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return p.Validate()
}

// indexParts maps the attached part ids of o to the supplied aggregates.
func indexParts(o *order.ServiceOrder, parts []*part.Part) (map[kernel.UUID]*part.Part, error) {
	byID := make(map[kernel.UUID]*part.Part, len(parts))
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}
	for _, id := range o.Parts() {
		if _, ok := byID[id]; !ok {
			return nil, errs.NewObjectNotFoundError("part", id.String())
		}
	}
	return byID, nil
}
