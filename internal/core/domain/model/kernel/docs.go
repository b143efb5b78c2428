// Package kernel provides core domain primitives shared by the part and order aggregates.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and ordering
//   - Money: A non-negative decimal amount used for prices and labor costs
//
// Both primitives are immutable and safe for concurrent use. Their zero values are
// invalid and are rejected by Validate, so aggregates can detect values that bypassed
// the constructors.
package kernel
