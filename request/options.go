package request

// Options configures a single fetch call. The zero value carries the
// fetch defaults: GET, no headers, no body, cors mode, omitted
// credentials, default cache, followed redirects, client referrer.
type Options struct {
	Method  Method
	Headers Headers

	// Body is an opaque payload handle, absent by default. It is passed
	// through unchanged; the caller must provide a shape the native
	// layer accepts (string, byte slice, or an already-native value).
	Body any

	Mode        Mode
	Credentials Credentials
	Cache       Cache
	Redirect    Redirect
	Referrer    Referrer
}

// Init is the fully resolved native argument shape: wire tokens only,
// plus the ordered header list and the opaque body. No partial state;
// every field is populated, from an explicit value or a default.
type Init struct {
	Method  string
	Headers Headers
	Body    any

	Mode        string
	Credentials string
	Cache       string
	Redirect    string
	Referrer    string
}

// Resolve flattens o into its native shape. Resolution is total: the
// closed variant sets leave no failing case.
func (o Options) Resolve() Init {
	return Init{
		Method:      string(o.Method.Canonical()),
		Headers:     o.Headers.Clone(),
		Body:        o.Body,
		Mode:        o.Mode.Token(),
		Credentials: o.Credentials.Token(),
		Cache:       o.Cache.Token(),
		Redirect:    o.Redirect.Token(),
		Referrer:    o.Referrer.Token(),
	}
}
