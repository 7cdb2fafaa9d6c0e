package document

// Snapshot is the read-only view of a submission handed to a renderer.
// The generator never depends on, or feeds back into, the submission's
// state machine.
type Snapshot struct {
	SubmissionID string
	Status       string
	Data         map[string]any
}
