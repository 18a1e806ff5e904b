package ports

// LineSource supplies raw command lines, one per call.
type LineSource interface {
	// ReadLine returns the next line including its trailing newline, if any.
	// It returns io.EOF once input is exhausted.
	ReadLine() (string, error)
}
