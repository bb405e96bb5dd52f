// Package payment provides the Payment aggregate, the authoritative record of
// a single payment attempt against an order. It carries the gateway order and
// payment identifiers and moves from PENDING to COMPLETED or FAILED as the
// gateway callback is verified.
//
// A payment row is created in the same transaction as its order, and completed
// in the same transaction that marks the order paid, so the two can never
// disagree after a crash.
package payment
