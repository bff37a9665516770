package transcribe

// MockTranscriber is a Transcriber for tests. It records the samples it
// receives and returns canned results.
type MockTranscriber struct {
	Text string
	Err  error

	Received []int16
	Closed   bool
}

func (m *MockTranscriber) Transcribe(samples []int16) (string, error) {
	m.Received = samples
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

func (m *MockTranscriber) Close() error {
	m.Closed = true
	return nil
}
