package docstore

import (
	"iter"

	"github.com/hupe1980/searchpool/distance"
	"github.com/hupe1980/searchpool/model"
)

// Store holds all documents of a pool. Documents are kept in a dense
// slice; the document with id n lives at index n-1, which the strictly
// increasing, gap-free id assignment guarantees.
type Store struct {
	docs []model.Document
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Append assigns the next id, normalizes the vector and stores the
// document. The vector and payload are copied so the caller retains no
// reference into the store. A zero-norm vector is stored unchanged.
//
// The caller is responsible for dimension validation.
func (s *Store) Append(vector []float32, payload model.Payload) model.DocumentID {
	// NormalizeL2Copy always clones; a zero-norm vector comes back as an
	// unchanged copy.
	vec, _ := distance.NormalizeL2Copy(vector)

	id := model.DocumentID(len(s.docs) + 1)
	s.docs = append(s.docs, model.Document{
		ID:      id,
		Vector:  vec,
		Payload: payload.Clone(),
	})

	return id
}

// Get returns the document with the given id.
func (s *Store) Get(id model.DocumentID) (model.Document, bool) {
	if id < 1 || int(id) > len(s.docs) {
		return model.Document{}, false
	}
	return s.docs[id-1], true
}

// Payload returns a clone of the payload stored for id, so callers never
// hold a mutable reference into the store.
func (s *Store) Payload(id model.DocumentID) model.Payload {
	doc, ok := s.Get(id)
	if !ok {
		return nil
	}
	return doc.Payload.Clone()
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	return len(s.docs)
}

// All returns an iterator over the stored documents in id order.
// The yielded documents alias store memory and must not be modified.
func (s *Store) All() iter.Seq[model.Document] {
	return func(yield func(model.Document) bool) {
		for i := range s.docs {
			if !yield(s.docs[i]) {
				return
			}
		}
	}
}

// IDs returns the set of all assigned document ids.
func (s *Store) IDs() *model.IDSet {
	ids := model.NewIDSet()
	if len(s.docs) > 0 {
		ids.AddRange(1, model.DocumentID(len(s.docs)))
	}
	return ids
}
