// Package customer provides the Customer aggregate: identity, display name
// and a unique contact email. Orders copy the name and email when placed.
package customer
