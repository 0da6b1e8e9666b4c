// Package watch pushes graph changes to websocket subscribers.
//
// What: a Hub fans events out to handlers registered per event kind, an
// http.Handler upgrades connections and binds them to the hub, and
// Snapshot/Dispatch translate engine effects into wire events.
//
// Why: the mutation engine returns effects instead of messaging anything
// itself. Something still has to tell the outside world; this package is
// that dispatcher. Publishing is fire-and-forget: a connection that cannot
// be written to is closed and dropped, never retried.
//
// Errors: none surface past the handler. Transport failures are logged and
// resolved by unsubscribing the dead connection.
package watch
