// Package order contains the ServiceOrder aggregate and its lifecycle.
//
// A service order references the parts consumed by the repair by identifier only.
// Stock bookkeeping for those parts is coordinated by the domain services package;
// this package owns the membership sets, the task checklist, the labor cost and the
// status machine:
//
//	Open ──┬──> Completed
//	       └──> Cancelled
//
// Completed and Cancelled are terminal: no operation mutates an order in those states.
package order
