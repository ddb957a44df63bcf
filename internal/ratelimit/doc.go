// Package ratelimit implements the request throttle for the warframe.market API.
//
// The marketplace ToS allows at most 3 requests per second. The limiter
// counts admits within the current one-second window and a background task
// zeroes the counter once per window. Admission and reset are serialized by
// the same mutex so a reset never interleaves with a check-and-increment.
package ratelimit
