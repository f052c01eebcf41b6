// Package server exposes the dsaviz engine over HTTP and WebSocket.
//
// # Routes
//
//	GET  /healthz                 liveness and build info
//	GET  /metrics                 Prometheus metrics (when enabled)
//	GET  /api/topics              every topic with its algorithms
//	GET  /api/topics/{topic}      one topic plus practice problems
//	GET  /api/styles              highlight tag → style table
//	POST /api/sequences           {algorithm, input} → sequence
//	POST /api/sequences/batch     {requests: [...]} → {results: [...]}
//	POST /api/frames              {algorithm, input, step, format} → DOT/SVG/PNG/PDF
//	GET  /api/play                WebSocket playback session
//	GET  /api/sessions            open playback sessions
//
// Errors are JSON bodies produced by httputil.WriteError.
//
// # Playback sessions
//
// Each WebSocket connection owns one playback.Controller. Clients send
// actions:
//
//	{"action": "execute", "algorithm": "bfs", "input": {"start": 0}}
//	{"action": "toggle"}
//	{"action": "speed", "speedMs": 250}
//	{"action": "seek", "index": 4}
//
// and the server answers with "session", "loaded", "frame" and "error"
// messages. The controller is closed when the connection drops.
package server
