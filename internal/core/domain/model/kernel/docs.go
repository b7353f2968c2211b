// Package kernel provides the value objects shared by all aggregates of the
// order management domain.
//
// The package includes:
//   - UUID: time-ordered identifier for customers, products and orders
//   - Money: exact decimal amount for prices and totals
//   - Email: validated mailbox address
//
// All value objects are immutable and have an invalid zero value, detected by Validate.
package kernel
