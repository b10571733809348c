// Package publicip answers "what is my (or this) public IP address and
// where is it" by querying one of many third-party HTTP services,
// normalizing their heterogeneous response formats into a single
// result shape and avoiding redundant network calls through a local
// response cache.
//
// The easiest way in is a package-level call:
//
//	resp, err := publicip.Lookup(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(resp)
//
// Programs doing more than one lookup should keep a Client around: it
// owns the cache for the session and flushes it to disk after every
// successful lookup.
//
// The lookup, providers and cache packages underneath expose the
// moving parts for callers which want manual control: a pinned
// provider without fallback, a custom transport, an isolated cache
// backed by a memory file system and so on.
package publicip
