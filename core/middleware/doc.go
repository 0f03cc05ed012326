// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: Validates the X-API-Key header (or api_key query parameter).
//   - rayid: Assigns every request a ray id, stored in the context and echoed
//     in the X-Ray-ID response header for tracing.
package middleware
