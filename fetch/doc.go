// Package fetch invokes the browser's fetch facility from js/wasm Go.
//
// Data flow: a request.Request is resolved into the native argument
// shape, combined with its URL into one native request handle, handed
// to fetch, and the settled native response handle is wrapped for the
// response package to read. Transport, TLS, caching, redirects and the
// rest of HTTP stay with the environment's fetch implementation; this
// package only shapes calls into it and results out of it.
//
// Every call blocks its goroutine until the native promise settles, so
// calls must not run on the goroutine servicing the event loop (see
// package promise). Once a fetch is initiated there is no way to abort
// it.
package fetch
