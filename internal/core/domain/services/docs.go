// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the order workflow. It
// implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - ServiceArea: Decides whether a destination pin code is deliverable,
//     driven by a configured set of recognized codes
//   - Pricer: Prices line items and computes order subtotals and the
//     weight-based shipping cost with fixed-precision decimal arithmetic
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
