// Package services provides domain services that coordinate the ServiceOrder aggregate
// with the Part aggregates it consumes.
//
// The package includes:
//   - PartBinder: attaches, detaches and releases parts while keeping stock in step
//   - CostCalculator: prices an order from its labor cost and the current part prices
//
// The services mutate aggregates in memory only. Callers load every aggregate inside
// one unit of work with row locks held and persist all of them before committing.
package services
