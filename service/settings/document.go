package settings

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Document holds the on-disk settings layout.
type Document struct {
	Defaults  *Settings            `yaml:"defaults,omitempty"`
	Resources map[string]*Settings `yaml:"resources,omitempty"`
}

// DocumentService loads settings from a YAML document addressed by an afs URL
// (file://, mem://, s3:// and friends). The document is fetched lazily and
// cached for the service lifetime; values support ${env.KEY} expansion.
type DocumentService struct {
	fs       afs.Service
	URL      string
	document *Document
	mux      sync.Mutex
}

// NewDocument creates a YAML document backed settings service.
func NewDocument(URL string) *DocumentService {
	return &DocumentService{fs: afs.New(), URL: URL}
}

// Resolve returns expanded settings for a resource key using longest prefix
// match over the document's resources section.
func (s *DocumentService) Resolve(ctx context.Context, resourceKey string) (*Settings, error) {
	document, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var match *Settings
	matchLen := -1
	for prefix, candidate := range document.Resources {
		if strings.HasPrefix(resourceKey, prefix) && len(prefix) > matchLen {
			match, matchLen = candidate, len(prefix)
		}
	}
	if match == nil {
		match = document.Defaults
	}
	ret := match.Clone()
	ret.expand()
	return ret, nil
}

func (s *DocumentService) load(ctx context.Context) (*Document, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.document != nil {
		return s.document, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings from %v: %w", s.URL, err)
	}
	document := &Document{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("failed to parse settings %v: %w", s.URL, err)
	}
	s.document = document
	return document, nil
}
