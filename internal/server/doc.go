// Package server implements lookupd's HTTP surface: the static demo page,
// GET /lookup, GET /healthz, and the metrics listener.
//
// Responses mirror the original node server byte for byte where a browser
// client depends on them: /lookup answers {"word":...,"isAWord":...} followed
// by a newline, unknown paths answer 404 "File not found.", and a failure to
// read a page asset answers 500 "Server error: <code>".
package server
