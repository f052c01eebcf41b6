// Package httputil provides JSON request and response helpers for the
// dsaviz HTTP server.
//
// # Responses
//
// [WriteJSON] encodes a value with a status code. [WriteError] maps a
// coded error from pkg/errors to an HTTP status and writes it as
//
//	{"error": {"code": "UNKNOWN_ALGORITHM", "message": "..."}}
//
// Unknown algorithms and topics become 404, invalid input and formats
// become 400, everything else is a 500 whose message is not exposed.
//
// # Requests
//
// [DecodeJSON] reads a size-limited body, rejects unknown fields and runs
// go-playground/validator struct tags on the result:
//
//	var req pipeline.Request
//	if err := httputil.DecodeJSON(r, &req); err != nil {
//	    httputil.WriteError(w, err)
//	    return
//	}
//
// # Middleware
//
// [Observe] reports the method, route pattern, status and duration of
// every request to a callback, which the server wires to its metrics
// hooks.
package httputil
