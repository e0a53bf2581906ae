// Package shared provides value types reused across aggregates.
package shared

// Ref is the display projection of a related record joined into a list row,
// for example the client name shown next to an invoice.
type Ref struct {
	ID   string
	Name string
}

// RefName returns the referenced name, or "" when the relation is absent.
func RefName(r *Ref) string {
	if r == nil {
		return ""
	}
	return r.Name
}
