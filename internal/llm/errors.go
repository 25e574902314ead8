package llm

import "errors"

var (
	// ErrRequestFailed is the single failure callers see from Ask. The
	// underlying cause is wrapped for logs but not meant for users.
	ErrRequestFailed = errors.New("failed to get response from Apologist AI")

	// ErrDisabled indicates the ask collaborator is turned off by config.
	ErrDisabled = errors.New("ask client disabled")
)
