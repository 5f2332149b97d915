package listing

import "fmt"

// UploadError wraps a media upload failure. Recoverable: the draft is reset
// and the submitter is told to retry.
type UploadError struct {
	Cause error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload media: %v", e.Cause)
}

func (e *UploadError) Unwrap() error { return e.Cause }

// PersistenceError wraps a session store or record sink failure.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not save your data (%s): %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }
