package jobsource

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spigell/careerbuddy/internal/jobs"
	"github.com/spigell/careerbuddy/internal/profile"
)

// File reads listings from a YAML or JSON document on every fetch.
type File struct {
	Path string
}

type listingsDocument struct {
	Jobs []jobs.Listing `yaml:"jobs"`
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Name() string { return KindFile }

func (f *File) FetchCandidateJobs(ctx context.Context, _ *profile.UserProfile) ([]jobs.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadListings(f.Path)
}

// LoadListings decodes either a bare list of listings or a document with a
// top-level "jobs" key.
func LoadListings(path string) ([]jobs.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file %q: %w", path, err)
	}

	return DecodeListings(data)
}

// DecodeListings is LoadListings over an in-memory document.
func DecodeListings(data []byte) ([]jobs.Listing, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decoding jobs: %w", err)
	}

	if len(node.Content) == 0 {
		return []jobs.Listing{}, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var listings []jobs.Listing
		if err := root.Decode(&listings); err != nil {
			return nil, fmt.Errorf("decoding jobs: %w", err)
		}
		return listings, nil
	case yaml.MappingNode:
		var doc listingsDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding jobs: %w", err)
		}
		if doc.Jobs == nil {
			doc.Jobs = []jobs.Listing{}
		}
		return doc.Jobs, nil
	default:
		return nil, fmt.Errorf("decoding jobs: expected a list or a mapping with a jobs key")
	}
}
