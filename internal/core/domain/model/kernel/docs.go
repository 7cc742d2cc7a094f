// Package kernel provides shared value objects used across all domain
// aggregates in the marketplace: UUID identifiers and Money amounts.
//
// Both types follow the same conventions:
//   - Zero values are invalid and fail Validate()
//   - Construction goes through factory functions that enforce invariants
//   - Values are immutable and safe for concurrent use
package kernel
