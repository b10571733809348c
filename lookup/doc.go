// This package contains the core machinery for resolving a public IP
// address and its geolocation attributes through third-party HTTP
// services.
//
// lookup knows nothing about concrete services. A concrete service is
// expressed as a Provider: a name, a set of capabilities, an endpoint
// template and a pure function which converts the raw payload of this
// service into a canonical Response. The providers package of this
// module ships implementations for the supported services.
//
// Service is a main entity of this package. It picks a provider (or
// iterates over a fallback ordering), performs exactly one HTTP round
// trip per attempted provider and returns the first normalized
// response. Caching and persistence live one level above, in the root
// publicip package.
package lookup
