// Package rental provides the Rental aggregate, the billing record behind a
// rented purifier. A rental is derived from a RENTAL order the moment its
// purifier is installed: it starts ACTIVE with a three-month initial period,
// carries the product's monthly rent and the deposit already collected, and is
// extended month by month as the customer renews.
package rental
