// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation, skipped for the public dataset files and docs.
//   - rayid: a request id per request, stored in the context and echoed in
//     the X-Ray-ID response header.
package middleware
