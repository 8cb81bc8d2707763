package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the admin
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// RetryAfterHeaderName is the trailer key carrying the retry-after seconds of
// a rate-limited call.
const RetryAfterHeaderName = "retry-after"
