// Package api implements the HTTP client for the zkpaste paste-storage
// service.
//
// The service is zero-knowledge: it stores and serves opaque ciphertext and
// never sees key material. This package therefore deals only in the wire
// representation (base64url ciphertext and IV, plaintext metadata, optional
// proof-of-work solutions) and leaves all cryptography to internal/crypto.
//
// Requests are JSON over HTTP. Transient failures (network errors and
// retryable status codes) are retried with exponential backoff and jitter;
// see RetryConfig. HTTP errors surface as *Error with the status code and
// any server-provided message and request id.
package api
