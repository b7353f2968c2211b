// Package services holds domain services whose logic spans more than one
// aggregate.
//
//   - OrderPlacement: validates product references against a catalog lookup
//     and builds an Order with snapshotted customer and product data.
package services
