package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// PDFFilename is the download name for generated résumé PDFs.
const PDFFilename = "my-resume.pdf"

// ArtifactStore keeps generated PDFs in memory under opaque ids so the
// browser can download them in a second request. Artifacts live until
// released or the process exits.
type ArtifactStore struct {
	mu        sync.Mutex
	artifacts map[string][]byte
}

func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{artifacts: make(map[string][]byte)}
}

// Put registers an artifact and returns its id.
func (s *ArtifactStore) Put(data []byte) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.artifacts[id] = data
	s.mu.Unlock()
	return id
}

// Get returns the artifact for id, if still present.
func (s *ArtifactStore) Get(id string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.artifacts[id]
	return data, ok
}

// Release drops the artifact for id. Releasing an unknown id is a no-op.
func (s *ArtifactStore) Release(id string) {
	s.mu.Lock()
	delete(s.artifacts, id)
	s.mu.Unlock()
}
