package command

import (
	"context"
	"fmt"
	"sync"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/cache"
	"github.com/tair/catalog-service/pkg/storage"
)

var noCache *cache.Cache

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// memoryStore mimics an object store with a fixed public URL
type memoryStore struct {
	remote  bool
	saved   map[string][]byte
	deleted []string
	fail    bool
	seq     int
}

func newMemoryStore(remote bool) *memoryStore {
	return &memoryStore{remote: remote, saved: map[string][]byte{}}
}

func (s *memoryStore) Save(_ context.Context, prefix, filename, contentType string, data []byte) (string, error) {
	if s.fail {
		return "", fmt.Errorf("bucket unavailable")
	}
	if !s.remote {
		return storage.EncodeDataURI(contentType, data), nil
	}
	s.seq++
	ref := fmt.Sprintf("https://cdn.example.com/%s/%d.%s", prefix, s.seq, storage.Extension(filename, contentType))
	s.saved[ref] = data
	return ref, nil
}

func (s *memoryStore) Delete(_ context.Context, ref string) {
	s.deleted = append(s.deleted, ref)
	delete(s.saved, ref)
}

func (s *memoryStore) Remote() bool {
	return s.remote
}

var pngUpload = ImageUpload{Filename: "logo.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
