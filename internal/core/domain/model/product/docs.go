// Package product provides the Product entity: a water purifier model from
// the catalog. A product may be offered for outright purchase, for rental, or
// both; the prices it carries determine what an order for it costs.
package product
