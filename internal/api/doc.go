// Package api provides the warframe.market v1 REST client.
//
// Endpoints used:
//   - GET /items/{item_name}/orders (item_name lower-cased)
//   - GET /profile/{username}/orders (username case-preserved)
//
// Every request passes through the shared rate limiter; a denied admit is
// retried after a fixed backoff and never surfaces to the caller. Non-200
// responses surface as *APIError and are never retried here.
package api
