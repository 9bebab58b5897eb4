// Package web serves logview's pages and its fetch endpoint with gin.
//
// Routes:
//
//	GET  /               counter demo page
//	GET  /logs           logs page, server-rendered from one fetch
//	GET  /api/logs       fetch the latest log as JSON (POST is accepted too)
//	GET  /ws/logs        websocket; every inbound message triggers one fetch
//	GET  /healthz        log directory readability
//	GET  /pkg/*          embedded stylesheet and scripts
//
// Anything else renders the Not Found page with status 404. Every request
// carries an X-Request-ID which is attached to the fetch's log lines.
package web
