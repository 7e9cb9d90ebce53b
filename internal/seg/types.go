package seg

// Field names every schema must declare.
const (
	FieldS = "s"
	FieldT = "t"
)

// Schema is the ordered list of field names a data line is read against.
type Schema struct {
	fields []string
}

func (s Schema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s Schema) Len() int { return len(s.fields) }

func (s Schema) Has(name string) bool {
	for _, f := range s.fields {
		if f == name {
			return true
		}
	}
	return false
}

// Field is one name/value pair of a record. Values of s and t are kept in
// their source text too so labels show what the user typed.
type Field struct {
	Name  string
	Value string
}

// Record is one parsed data line: the node range [S, T] plus every declared
// field in schema order (a repeated name keeps its last value).
type Record struct {
	Line   int
	S      int
	T      int
	Fields []Field
}

// Span is the number of integer points the record covers. It is computed in
// float64 so ranges near the int limits do not wrap.
func (r Record) Span() float64 { return float64(r.T) - float64(r.S) + 1 }

// Get returns the raw value stored under name.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// set stores v under name, overwriting an earlier field with the same name in place.
func (r *Record) set(name, v string) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = v
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: v})
}
