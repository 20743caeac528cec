// Package catalog serves the static reference datasets (roles,
// competencies, adjacency) from a directory of JSON files. Datasets are
// produced externally; this provider only reads them.
package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/career-navigator/apiserver/types"
)

var (
	// ErrInvalidName rejects dataset names with path separators or
	// traversal segments, or without the .json extension.
	ErrInvalidName = errors.New("invalid dataset name")

	// ErrNotFound is returned when the dataset file does not exist.
	ErrNotFound = errors.New("dataset not found")

	// ErrMalformed is returned when a dataset file is not valid JSON.
	ErrMalformed = errors.New("dataset parse error")
)

const datasetExt = ".json"

// Well-known dataset files behind the typed accessors.
const (
	rolesDataset        = "role_abbreviations.json"
	competenciesDataset = "competency_definitions.json"
	matrixDataset       = "competencies_and_roles.json"
	adjacencyDataset    = "adjacency_overlap.json"
)

// Provider reads datasets from dir and caches parsed files in memory.
type Provider struct {
	dir string

	mu    sync.Mutex
	cache map[string]json.RawMessage
}

func NewProvider(dir string) *Provider {
	return &Provider{dir: dir, cache: make(map[string]json.RawMessage)}
}

// List returns the available dataset filenames, sorted. A missing data
// directory yields an empty list.
func (p *Provider) List() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), datasetExt) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load returns the raw dataset by filename.
func (p *Provider) Load(name string) (json.RawMessage, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	p.mu.Lock()
	cached, ok := p.cache[name]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	raw, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, ErrMalformed
	}

	p.mu.Lock()
	p.cache[name] = raw
	p.mu.Unlock()
	return raw, nil
}

// Roles returns the canonical role catalog.
func (p *Provider) Roles() ([]types.Role, error) {
	var out []types.Role
	if err := p.rows(rolesDataset, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompetencyDefinitions returns the competency taxonomy.
func (p *Provider) CompetencyDefinitions() ([]types.CompetencyDefinition, error) {
	var out []types.CompetencyDefinition
	if err := p.rows(competenciesDataset, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompetencyMatrix returns the raw competencies-and-roles matrix rows.
func (p *Provider) CompetencyMatrix() ([]map[string]any, error) {
	var out []map[string]any
	if err := p.rows(matrixDataset, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Adjacency returns the role-overlap entries.
func (p *Provider) Adjacency() ([]types.AdjacencyEntry, error) {
	var out []types.AdjacencyEntry
	if err := p.rows(adjacencyDataset, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resources returns the curated starter resource set.
func Resources() []types.Resource {
	return []types.Resource{
		{ID: "res-cto-1", Title: "Developer Experience & Golden Paths", Tags: []string{"IDP & DevEx"}},
		{ID: "res-cto-2", Title: "Portfolio & FinOps Basics", Tags: []string{"FinOps & Capacity"}},
		{ID: "res-generic-1", Title: "Executive Storytelling", Tags: []string{"External Signaling"}},
	}
}

// rows decodes the "rows" array of a dataset into out.
func (p *Provider) rows(name string, out any) error {
	raw, err := p.Load(name)
	if err != nil {
		return err
	}
	var dataset struct {
		Rows json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return ErrMalformed
	}
	if len(dataset.Rows) == 0 {
		return nil
	}
	if err := json.Unmarshal(dataset.Rows, out); err != nil {
		return ErrMalformed
	}
	return nil
}

func validateName(name string) error {
	if name == "" ||
		strings.ContainsAny(name, `/\`) ||
		strings.Contains(name, "..") ||
		!strings.HasSuffix(name, datasetExt) {
		return ErrInvalidName
	}
	return nil
}
