// Package client is the client's handle to the remote bowlers collection.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Add, Delete,
//     BatchDelete, Subscribe, Login, Export and Ping.
//  2. A gRPC implementation (see GRPCClient) that manages the connection,
//     injects the admin access token via an interceptor, runs the snapshot
//     subscription on its own goroutine and maps gRPC status codes to
//     sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite session store and applies embedded goose migrations.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized. Subscription failures are
// delivered to the onError callback wrapped in common.ErrSubscriptionFailed.
package client
