// Command lookupd serves dictionary lookups over HTTP, together with the
// browser demo page.
//
//	GET /lookup?word=cat  -> {"word":"cat","isAWord":true}
//	GET /healthz          -> {"status":"SERVING","fingerprint":"..."}
//
// It listens on 127.0.0.1:2525 by default and shuts down gracefully on
// SIGINT or SIGTERM. Prometheus metrics are served on a separate listener
// when --metrics-enabled is set.
package main
