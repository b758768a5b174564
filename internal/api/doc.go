// Package api implements the HTTP handlers of the MADR service: account
// registration and management, token issuance, and the novelist and book
// catalog. Handlers translate between the Portuguese wire contract and
// the domain layer, and map store errors onto the public status codes.
package api
