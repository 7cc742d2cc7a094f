// Package order provides the buyer-side Order aggregate: the top-level
// purchase spanning one or more stores, its human-readable order number,
// and the aggregate totals (items, shipping, platform fee, grand total).
//
// The heavy lifting of the fulfillment workflow lives in the storeorder
// package; this aggregate only tracks the money view of the whole purchase
// and recomputes it when store orders are accepted, rejected, or cancelled.
package order
