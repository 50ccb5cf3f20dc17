// Package client talks to the remote authentication service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     Register and Close.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that posts one
//     request per call, tags it with an X-Request-ID header and decodes the
//     service's success and error envelopes.
//
// # Wire format
//
//	POST <login URL>     {"email": "...", "password": "..."}
//	  2xx  {"data": {"name", "email", "accessToken", "refreshToken"}}
//	POST <register URL>  {"email": "...", "name": "...", "password": "..."}
//	  2xx  body ignored
//	non-2xx              {"message": "..."}  (optional)
//
// # Error Handling
//
// Failures fall into three groups that callers tell apart with errors.Is and
// errors.As:
//   - *RemoteError: the service answered with a non-2xx status;
//   - ErrUnavailable: no response arrived (dial error, reset, timeout);
//   - ErrMalformedResponse: a 2xx answer could not be decoded.
//
// No call is ever retried.
package client
