package request

// The policy enums below are closed variant sets. Each zero value is the
// fetch default, and each Token method is an exhaustive mapping to the
// wire token, so an invalid token cannot be emitted.
//
// Reference: https://fetch.spec.whatwg.org/#requestinit

// Mode selects the request's CORS mode.
type Mode uint8

const (
	ModeCORS Mode = iota
	ModeNoCORS
	ModeSameOrigin
	ModeNavigate
)

func (m Mode) Token() string {
	switch m {
	case ModeNoCORS:
		return "no-cors"
	case ModeSameOrigin:
		return "same-origin"
	case ModeNavigate:
		return "navigate"
	}
	return "cors"
}

// Credentials selects when credentials accompany the request.
type Credentials uint8

const (
	CredentialsOmit Credentials = iota
	CredentialsSameOrigin
	CredentialsInclude
)

func (c Credentials) Token() string {
	switch c {
	case CredentialsSameOrigin:
		return "same-origin"
	case CredentialsInclude:
		return "include"
	}
	return "omit"
}

// Cache selects how the request interacts with the browser's HTTP cache.
type Cache uint8

const (
	CacheDefault Cache = iota
	CacheNoStore
	CacheReload
	CacheNoCache
	CacheForceCache
	CacheOnlyIfCached
)

func (c Cache) Token() string {
	switch c {
	case CacheNoStore:
		return "no-store"
	case CacheReload:
		return "reload"
	case CacheNoCache:
		return "no-cache"
	case CacheForceCache:
		return "force-cache"
	case CacheOnlyIfCached:
		return "only-if-cached"
	}
	return "default"
}

// Redirect selects how redirect responses are handled.
type Redirect uint8

const (
	RedirectFollow Redirect = iota
	RedirectError
	RedirectManual
)

func (r Redirect) Token() string {
	switch r {
	case RedirectError:
		return "error"
	case RedirectManual:
		return "manual"
	}
	return "follow"
}

const referrerClientToken = "about:client"

// Referrer selects the request's referrer. The zero value is the
// client default. Constructed only through ReferrerClient, NoReferrer
// and ReferrerURL, so no invalid state exists.
type Referrer struct {
	url        string
	noReferrer bool
}

// ReferrerClient lets the environment pick the referrer ("about:client").
func ReferrerClient() Referrer { return Referrer{} }

// NoReferrer omits the referrer entirely.
func NoReferrer() Referrer { return Referrer{noReferrer: true} }

// ReferrerURL sends the given URL verbatim.
func ReferrerURL(url string) Referrer { return Referrer{url: url} }

func (r Referrer) Token() string {
	switch {
	case r.noReferrer:
		return "no-referrer"
	case r.url != "":
		return r.url
	}
	return referrerClientToken
}
