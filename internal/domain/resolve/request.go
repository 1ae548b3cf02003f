// Package resolve turns a requested set of unit names into an executable
// order by installing declared prerequisites first.
package resolve

import (
	"github.com/rigup-sh/rigup/internal/domain/catalog"
)

// Request is the caller-supplied, order-significant set of unit names for
// one run. Names are unique; duplicates collapse onto their first
// occurrence. The resolver mutates a Request in place by removing
// dependency names it has already handled.
type Request struct {
	ids []catalog.UnitID
}

// NewRequest builds a Request from raw names, validating each and dropping
// duplicates while preserving first-occurrence order.
func NewRequest(names ...string) (*Request, error) {
	req := &Request{}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		id, err := catalog.NewUnitID(name)
		if err != nil {
			return nil, err
		}
		if seen[id.String()] {
			continue
		}
		seen[id.String()] = true
		req.ids = append(req.ids, id)
	}
	return req, nil
}

// Contains reports whether id is in the request.
func (r *Request) Contains(id catalog.UnitID) bool {
	for _, have := range r.ids {
		if have.Equals(id) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of the ids are in the request.
func (r *Request) ContainsAny(ids []catalog.UnitID) bool {
	for _, id := range ids {
		if r.Contains(id) {
			return true
		}
	}
	return false
}

// Remove deletes id from the request, preserving the order of the rest.
// Removing an absent id is a no-op.
func (r *Request) Remove(id catalog.UnitID) {
	for i, have := range r.ids {
		if have.Equals(id) {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return
		}
	}
}

// IDs returns the requested unit IDs in order.
func (r *Request) IDs() []catalog.UnitID {
	ids := make([]catalog.UnitID, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Names returns the requested names in order.
func (r *Request) Names() []string {
	names := make([]string, len(r.ids))
	for i, id := range r.ids {
		names[i] = id.String()
	}
	return names
}

// Len returns the number of requested units.
func (r *Request) Len() int {
	return len(r.ids)
}

// Empty reports whether nothing is requested.
func (r *Request) Empty() bool {
	return len(r.ids) == 0
}

// clone returns an independent copy of the request.
func (r *Request) clone() *Request {
	ids := make([]catalog.UnitID, len(r.ids))
	copy(ids, r.ids)
	return &Request{ids: ids}
}
