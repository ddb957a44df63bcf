// Package model defines shared data types for the warframe.market tool.
//
// Conventions:
//   - Prices: integer platinum; a missing price is a nil pointer, not zero
//   - Timestamps: opaque ISO 8601 strings as returned by the API
//   - JSON tags mirror the warframe.market v1 wire format (snake_case)
package model
