package attr

// TryFromAttributes scans attrs for the first attribute named like the
// schema and parses it. It returns (nil, nil) when no attribute
// matches; a second attribute with the same name is never examined.
func (s *Schema) TryFromAttributes(attrs []Attr) (*Instance, error) {
	for i := range attrs {
		if attrs[i].Name == s.Name {
			return s.Parse(attrs[i])
		}
	}
	return nil, nil
}

// FromAttributes is TryFromAttributes for call sites that require the
// attribute: absence is a MissingAttrError.
func (s *Schema) FromAttributes(attrs []Attr) (*Instance, error) {
	in, err := s.TryFromAttributes(attrs)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, &MissingAttrError{Name: s.Name}
	}
	return in, nil
}
