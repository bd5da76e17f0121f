package speaker

import "io"

// Registry holds speakers in insertion order.
type Registry struct {
	speakers []Speaker
}

// Add appends a speaker.
func (r *Registry) Add(s Speaker) {
	r.speakers = append(r.speakers, s)
}

// Create builds a speaker with New and adds it.
func (r *Registry) Create(kind Kind, name string) (Speaker, error) {
	s, err := New(kind, name)
	if err != nil {
		return nil, err
	}
	r.Add(s)
	return s, nil
}

// All returns the speakers in insertion order. The slice is a copy.
func (r *Registry) All() []Speaker {
	out := make([]Speaker, len(r.speakers))
	copy(out, r.speakers)
	return out
}

// Len returns the number of registered speakers.
func (r *Registry) Len() int {
	return len(r.speakers)
}

// SpeakAll has every speaker speak to w, stopping at the first write error.
func (r *Registry) SpeakAll(w io.Writer) error {
	for _, s := range r.speakers {
		if err := s.Speak(w); err != nil {
			return err
		}
	}
	return nil
}
