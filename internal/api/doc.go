// Package api contains the HTTP delivery layer: one handler type per
// entity, shared request decoding and response helpers, and the error
// classifier that turns store and database errors into the API's uniform
// {status, msg} failures.
//
// Handlers that need several independent facts within one request (an
// existence check plus a mutation, a list plus a filter validation) issue
// them concurrently and inspect the results in a fixed order once all have
// settled.
package api
