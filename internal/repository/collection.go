// Package repository backs the development server with in-memory storage.
// It exists so the client stack can be exercised end to end without the
// hosted backend; nothing here survives a restart.
package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

// Doc is a schemaless record. Handlers read and write snake_case keys to
// match the wire format of the hosted API.
type Doc map[string]any

// Collection is a mutex-guarded document set with uuid primary keys and
// insertion-order listing.
type Collection struct {
	mu    sync.RWMutex
	docs  map[string]Doc
	order []string
}

func NewCollection() *Collection {
	return &Collection{docs: map[string]Doc{}}
}

func (c *Collection) Insert(doc Doc) Doc {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := cloneDoc(doc)
	id, _ := stored["id"].(string)
	if id == "" {
		id = uuid.NewString()
		stored["id"] = id
	}
	now := time.Now().UTC().Format(time.RFC3339)
	stored["inserted_at"] = now
	stored["updated_at"] = now

	c.docs[id] = stored
	c.order = append(c.order, id)
	return cloneDoc(stored)
}

func (c *Collection) Get(id string) (Doc, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDoc(doc), nil
}

// Update merges patch into the stored document. Keys set to nil in the patch
// are removed.
func (c *Collection) Update(id string, patch Doc) (Doc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range patch {
		if k == "id" || k == "inserted_at" {
			continue
		}
		if v == nil {
			delete(doc, k)
			continue
		}
		doc[k] = v
	}
	doc["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	return cloneDoc(doc), nil
}

func (c *Collection) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns documents in insertion order, keeping only those whose
// fields equal every filter value.
func (c *Collection) List(filters map[string]string) []Doc {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Doc
	for _, id := range c.order {
		doc := c.docs[id]
		if matches(doc, filters) {
			out = append(out, cloneDoc(doc))
		}
	}
	return out
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func matches(doc Doc, filters map[string]string) bool {
	for key, want := range filters {
		got, ok := doc[key].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func cloneDoc(doc Doc) Doc {
	out := make(Doc, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
