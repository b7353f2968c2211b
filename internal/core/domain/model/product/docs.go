// Package product provides the Product aggregate of the catalog.
package product
