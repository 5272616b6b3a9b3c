// Package errors provides structured error handling for the service.
//
// Errors carry a Code from a closed taxonomy, a human-readable message, an
// optional wrapped cause, and optional metadata. Handlers map codes onto
// HTTP statuses with WriteHTTP; orchestrator config validation accumulates
// field problems through ValidationBuilder.
//
// Note that game-rule precondition failures (wrong phase, insufficient
// funds, already-used hand) are not errors at all: the engine treats them
// as silent no-ops. Errors here cover the input boundary (unknown run id,
// malformed payloads) and infrastructure failures.
//
// Typical usage:
//
//	if input.RunID == "" {
//		return nil, errors.InvalidArgument("run ID is required")
//	}
//	if err := repo.Save(ctx, state); err != nil {
//		return nil, errors.Wrap(err, "failed to save run state")
//	}
package errors
