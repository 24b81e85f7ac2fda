// Package api is the HTTP client for the CLMS REST API.
//
// The harness is purely a consumer of CLMS: this package issues requests and
// hands back the raw status code plus the decoded response envelope, and the
// test packages decide what counts as a pass. The only policy implemented
// here is authentication, because a failed login is the one condition that
// aborts an entire run.
//
// CLMS responses share a single envelope shape:
//
//	{ "success": bool, "message": "...", "count": n, "data": ..., "pagination": {...} }
//
// where data is an object for single-resource endpoints and an array for
// list endpoints. The envelope's data payload is exposed as an ldvalue.Value
// so tests can inspect arbitrary fields without a Go struct per endpoint.
package api
