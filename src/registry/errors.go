package registry

import (
	"errors"
	"strings"
)

var (
	// Write ran out of gas or the sender out of funds. Retryable with an
	// adjusted resource budget.
	ErrGasExhausted = errors.New("registry: gas exhausted")

	// The signer refused to sign or the key is unusable. Terminal for this
	// attempt, the caller must re-trigger.
	ErrRejectedBySigner = errors.New("registry: rejected by signer")

	// The transaction was broadcast but not mined within the configured wait.
	// The write cannot be retracted, only abandoned.
	ErrConfirmationTimeout = errors.New("registry: confirmation timeout")

	// No application exists under the requested id
	ErrNotFound = errors.New("registry: application not found")

	// No creation event matched within the scanned block window
	ErrTxNotFound = errors.New("registry: submission transaction not found")

	// Write was mined but the contract reverted it
	ErrExecutionReverted = errors.New("registry: execution reverted")
)

// classifyWriteError maps raw node/signer errors onto the error taxonomy the
// submission workflow branches on. Matching is by substring because the node
// reports these as plain strings.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "out of gas"),
		strings.Contains(msg, "intrinsic gas too low"),
		strings.Contains(msg, "gas required exceeds"),
		strings.Contains(msg, "insufficient funds"):
		return errors.Join(ErrGasExhausted, err)
	case strings.Contains(msg, "user denied"),
		strings.Contains(msg, "signature"),
		strings.Contains(msg, "unauthorized signer"):
		return errors.Join(ErrRejectedBySigner, err)
	default:
		return err
	}
}
