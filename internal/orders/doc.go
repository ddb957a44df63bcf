// Package orders implements the filtering and price-extraction stages of
// the fetch-and-transform pipeline.
//
// Filters select the orders usable for price discovery and preserve the
// input order; they never sort. A single malformed order is logged and
// dropped without failing the surrounding batch.
package orders
