package bistro

// SinkForTest keeps every emitted event in order.
type SinkForTest struct {
	Events []Event
}

func (s *SinkForTest) Emit(e Event) {
	s.Events = append(s.Events, e)
}

func (s SinkForTest) Lines() []string {
	lines := make([]string, len(s.Events))
	for i, e := range s.Events {
		lines[i] = e.String()
	}
	return lines
}

func (s SinkForTest) Kinds() []EventKind {
	kinds := make([]EventKind, len(s.Events))
	for i, e := range s.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (s *SinkForTest) Reset() {
	s.Events = nil
}
