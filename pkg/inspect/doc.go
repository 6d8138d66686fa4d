// Package inspect exposes a running widget tree over HTTP for
// development tooling: a JSON snapshot of the element tree, a health
// probe, and a WebSocket stream of rebuild events.
//
// The server is read-only and intended for local development. Attach it
// to an engine and start it on an ephemeral port:
//
//	srv := inspect.NewServer(eng)
//	port, err := srv.Start(0)
package inspect
