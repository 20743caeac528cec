package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
}

func TestListAndLoad(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "role_abbreviations.json", `{"rows":[{"name":"Cloud Architect","abbreviation":"CA"}]}`)
	writeDataset(t, dir, "notes.txt", "ignored")

	p := NewProvider(dir)

	names, err := p.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(names) != 1 || names[0] != "role_abbreviations.json" {
		t.Fatalf("unexpected names: %v", names)
	}

	raw, err := p.Load("role_abbreviations.json")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("empty dataset")
	}
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "absent"))
	names, err := p.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no datasets, got %v", names)
	}
}

func TestLoad_RejectsBadNames(t *testing.T) {
	p := NewProvider(t.TempDir())
	for _, name := range []string{
		"",
		"../secrets.json",
		"sub/dir.json",
		`sub\dir.json`,
		"roles.yaml",
	} {
		if _, err := p.Load(name); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	p := NewProvider(t.TempDir())
	if _, err := p.Load("missing.json"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "broken.json", "{not json")

	p := NewProvider(dir)
	if _, err := p.Load("broken.json"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestRolesAccessor(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "role_abbreviations.json",
		`{"rows":[{"name":"Cloud Architect","abbreviation":"CA"},{"name":"Chief Technology Officer","abbreviation":"CTO"}]}`)

	p := NewProvider(dir)
	roles, err := p.Roles()
	if err != nil {
		t.Fatalf("Roles error: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	if roles[0].Name != "Cloud Architect" || roles[0].Abbreviation != "CA" {
		t.Fatalf("unexpected first role: %+v", roles[0])
	}
}

func TestAdjacencyAccessor(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "adjacency_overlap.json",
		`{"rows":[{"role":"Solutions Architect","overlap_pct":62.5}]}`)

	p := NewProvider(dir)
	entries, err := p.Adjacency()
	if err != nil {
		t.Fatalf("Adjacency error: %v", err)
	}
	if len(entries) != 1 || entries[0].OverlapPct != 62.5 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
