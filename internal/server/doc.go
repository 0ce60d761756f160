// Package server exposes the describe and guess operations over HTTP.
//
// Routes:
//
//	GET  /api/health            liveness and version
//	GET  /api/parse?q=&type=    parse a chord, scale or mode
//	GET  /api/scales?q=         scale suggestions for a chord symbol
//	GET  /api/guess?notes=      resolve spelled notes (C3,E3,G3)
//	GET  /api/guess?classes=    resolve pitch classes (C,E,G)
//	POST /api/guess/chroma      resolve a 12-bin chroma vector
//
// Every response is JSON. Failures use api.ErrorResponse. When a token is
// configured, requests must carry "Authorization: Bearer <token>".
package server
