package registration

// Status maps each field to whether its rule last passed.
type Status map[Key]bool

// DefaultStatus is the state before any interaction. gender and terms start
// valid because nothing has evaluated them yet.
func DefaultStatus() Status {
	s := make(Status, len(Keys))
	for _, k := range Keys {
		s[k] = false
	}
	s[Gender] = true
	s[Terms] = true
	return s
}

// AllValid is the gate: true iff every entry is true.
func (s Status) AllValid() bool {
	for _, ok := range s {
		if !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Status) Clone() Status {
	out := make(Status, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// reset restores defaults in place.
func (s Status) reset() {
	for k, v := range DefaultStatus() {
		s[k] = v
	}
}
