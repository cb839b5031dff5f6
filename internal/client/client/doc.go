// Package client talks to the carswipe messaging server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     registration, login, key material lookup and thread/message calls.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor and maps gRPC
//     status codes back to the sentinel errors in internal/common.
//
// GRPCClient satisfies the KeyDirectory and MessageStore collaborators used
// by internal/client/messaging.
//
// # Error Handling
//
// Callers match errors with errors.Is: common.ErrorNotFound,
// common.ErrorValidation, common.ErrorUnauthorized, common.ErrorForbidden,
// common.ErrorAlreadyExists, common.ErrRecipientKeyMissing and ErrUnavailable.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
