package completion

// Registry collects records and drops duplicates under Record.Equal. It keeps
// the position of the first occurrence, so callers that care about analyzer
// order get it back unchanged.
type Registry struct {
	records []Record
	byHash  map[uint64][]int // fingerprint → indexes into records
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byHash: make(map[uint64][]int),
	}
}

// Add inserts rec unless an equal record is already present. When it is, the
// stored record picks up rec's documentation if it has none of its own.
// Add reports whether rec was new.
func (r *Registry) Add(rec Record) bool {
	h := rec.Fingerprint()
	for _, idx := range r.byHash[h] {
		existing := &r.records[idx]
		if !existing.Equal(rec) {
			continue
		}
		// Prefer the entry with documentation
		if existing.DocString == "" && rec.DocString != "" {
			existing.DocString = rec.DocString
			existing.PreviewText = rec.PreviewText
		}
		return false
	}
	r.byHash[h] = append(r.byHash[h], len(r.records))
	r.records = append(r.records, rec)
	return true
}

// AddAll adds every record in order and returns how many were new.
func (r *Registry) AddAll(recs []Record) int {
	added := 0
	for _, rec := range recs {
		if r.Add(rec) {
			added++
		}
	}
	return added
}

// Contains reports whether an equal record is present.
func (r *Registry) Contains(rec Record) bool {
	for _, idx := range r.byHash[rec.Fingerprint()] {
		if r.records[idx].Equal(rec) {
			return true
		}
	}
	return false
}

// Records returns the unique records in first-seen order.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Size returns the number of unique records.
func (r *Registry) Size() int {
	return len(r.records)
}

// Dedupe is a convenience wrapper returning the unique records of recs.
func Dedupe(recs []Record) []Record {
	r := NewRegistry()
	r.AddAll(recs)
	return r.Records()
}
