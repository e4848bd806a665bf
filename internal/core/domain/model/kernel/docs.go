// Package kernel provides shared value objects used across all domain models.
//
// The package includes:
//   - UUID: A validated wrapper around github.com/google/uuid used as the
//     identifier for all entities and aggregates
//   - Money: A fixed-precision decimal monetary amount used for prices,
//     line totals, and shipping costs
//
// Both types are immutable value objects whose zero values are invalid and
// must be created through their constructor functions. This ensures that
// identifiers and monetary amounts flowing through the system are always
// well-formed.
package kernel
