package attr

// FieldKind classifies how one schema field consumes arguments.
type FieldKind int

const (
	// Mandatory fields take `name = value` and must be supplied.
	Mandatory FieldKind = iota
	// Optional fields take `name = value` and may be omitted.
	Optional
	// Switch fields take a bare `name` and are present or absent.
	Switch
)

// String returns a human-readable kind name.
func (k FieldKind) String() string {
	switch k {
	case Mandatory:
		return "mandatory"
	case Optional:
		return "optional"
	case Switch:
		return "switch"
	default:
		return "unknown"
	}
}

// FieldSpec describes one argument a schema accepts. Value parses the
// argument's value and is nil for switches.
type FieldSpec struct {
	Name  string
	Kind  FieldKind
	Value ValueParser
}

// Schema describes the argument list of one attribute. Field names are
// assumed unique; with duplicates the first spec receives the values.
type Schema struct {
	Name   string
	Fields []FieldSpec
}

// field returns the spec for an argument name, or nil.
func (s *Schema) field(name string) *FieldSpec {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// Instance is the result of matching one argument list against a
// schema: a presence flag per switch and a value per supplied field.
type Instance struct {
	schema  *Schema
	present map[string]bool
	values  map[string]any
}

// Present reports whether a switch argument was supplied.
func (in *Instance) Present(name string) bool {
	return in.present[name]
}

// Value returns a mandatory field's parsed value. The parse guarantees
// mandatory fields are set; absent names yield nil.
func (in *Instance) Value(name string) any {
	return in.values[name]
}

// Lookup returns an optional field's parsed value and whether it was
// supplied.
func (in *Instance) Lookup(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}
