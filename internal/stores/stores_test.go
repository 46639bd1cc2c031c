package stores

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"testing"

	"github.com/luizavanter/guialmeidapersonal/internal/models"
)

// stubDoer plays the API client: canned JSON per "METHOD path", decoded
// through the models package so the stores see realistic payloads.
type stubDoer struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	metas     map[string]*models.PaginationMeta
	calls     []string
	bodies    map[string]any
	queries   map[string]url.Values
}

func newStubDoer() *stubDoer {
	return &stubDoer{
		responses: map[string]string{},
		errs:      map[string]error{},
		metas:     map[string]*models.PaginationMeta{},
		bodies:    map[string]any{},
		queries:   map[string]url.Values{},
	}
}

func (d *stubDoer) respond(method, path, payload string) {
	d.responses[method+" "+path] = payload
}

func (d *stubDoer) fail(method, path string, err error) {
	d.errs[method+" "+path] = err
}

func (d *stubDoer) paginate(path string, meta *models.PaginationMeta) {
	d.metas["GET "+path] = meta
}

func (d *stubDoer) do(method, path string, body, out any) error {
	key := method + " " + path
	d.mu.Lock()
	d.calls = append(d.calls, key)
	if body != nil {
		d.bodies[key] = body
	}
	payload, ok := d.responses[key]
	err := d.errs[key]
	d.mu.Unlock()

	if err != nil {
		return err
	}
	if out == nil || !ok {
		return nil
	}
	return json.Unmarshal([]byte(payload), out)
}

func (d *stubDoer) Get(ctx context.Context, path string, query url.Values, out any) error {
	d.recordQuery("GET "+path, query)
	return d.do("GET", path, nil, out)
}

func (d *stubDoer) GetPage(ctx context.Context, path string, query url.Values, out any) (*models.PaginationMeta, error) {
	d.recordQuery("GET "+path, query)
	if err := d.do("GET", path, nil, out); err != nil {
		return nil, err
	}
	d.mu.Lock()
	meta := d.metas["GET "+path]
	d.mu.Unlock()
	return meta, nil
}

func (d *stubDoer) recordQuery(key string, query url.Values) {
	d.mu.Lock()
	d.queries[key] = query
	d.mu.Unlock()
}

func (d *stubDoer) lastQuery(method, path string) url.Values {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queries[method+" "+path]
}

func (d *stubDoer) Post(ctx context.Context, path string, body, out any) error {
	return d.do("POST", path, body, out)
}

func (d *stubDoer) Put(ctx context.Context, path string, body, out any) error {
	return d.do("PUT", path, body, out)
}

func (d *stubDoer) Patch(ctx context.Context, path string, body, out any) error {
	return d.do("PATCH", path, body, out)
}

func (d *stubDoer) Delete(ctx context.Context, path string) error {
	return d.do("DELETE", path, nil, nil)
}

func (d *stubDoer) callCount(method, path string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, c := range d.calls {
		if c == method+" "+path {
			count++
		}
	}
	return count
}

func (d *stubDoer) lastBody(t *testing.T, method, path string) map[string]any {
	t.Helper()
	d.mu.Lock()
	body := d.bodies[method+" "+path]
	d.mu.Unlock()
	if body == nil {
		t.Fatalf("no body recorded for %s %s", method, path)
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal recorded body: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(encoded, &m); err != nil {
		t.Fatalf("unmarshal recorded body: %v", err)
	}
	return m
}
