// Package kernel provides core domain primitives shared across the order,
// payment, and rental models.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a value object holding an amount in minor currency units with its currency
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
