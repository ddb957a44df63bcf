// Package server exposes the tool's operations over HTTP for a browser
// front-end.
//
// Routes:
//   - GET /healthz
//   - GET /wfmarket/items/{item_name}/floor-prices?count=N
//   - GET /wfmarket/profile/{username}/orders?type=sell|buy
//   - GET /wfmarket/profile/{username}/check?type=&count=&visible_only=
package server
