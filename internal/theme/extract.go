package theme

// Entry is a flattened colour: the dash-joined path to a leaf and its raw value.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Raw  string `json:"raw" yaml:"raw"`
}

// Entries is an ordered list of flattened colours.
type Entries []Entry

// Map returns the entries as a name to raw value mapping.
func (e Entries) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, entry := range e {
		m[entry.Name] = entry.Raw
	}
	return m
}

// Extract flattens t into entries in tree order. Each leaf is named by
// the keys on its path joined with "-", so {primary: {500: x}} yields
// "primary-500".
func Extract(t *Tree) Entries {
	entries := Entries{}
	for _, c := range t.Children() {
		entries = extractInto(entries, c.Tree, c.Key)
	}
	return entries
}

func extractInto(entries Entries, t *Tree, name string) Entries {
	if t.IsLeaf() {
		return append(entries, Entry{Name: name, Raw: t.Value()})
	}
	for _, c := range t.Children() {
		entries = extractInto(entries, c.Tree, name+"-"+c.Key)
	}
	return entries
}
