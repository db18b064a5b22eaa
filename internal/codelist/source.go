package codelist

//go:generate mockgen -source=source.go -destination=../mock/codelist_source_mock.go -package=mock

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source supplies code tables to a [Registry].
type Source interface {
	// Load returns the tables the source provides. A source may provide
	// only a subset of [Names].
	Load(ctx context.Context) (map[Name]CodeList, error)
}

//go:embed data/*.yaml
var embedded embed.FS

// EmbeddedSource serves the tables compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the source of the built-in tables.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Load implements [Source]. It provides every known table.
func (s *EmbeddedSource) Load(ctx context.Context) (map[Name]CodeList, error) {
	return loadFS(ctx, embedded, "data", true)
}

// DirSource reads tables from YAML files in a directory. A file named
// <table>.yaml replaces the built-in table of the same name; tables without
// a file are left to other sources.
type DirSource struct {
	dir string
}

// NewDirSource returns a source reading from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load implements [Source].
func (s *DirSource) Load(ctx context.Context) (map[Name]CodeList, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error reading code list directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, s.dir)
	}

	return loadFS(ctx, os.DirFS(s.dir), ".", false)
}

func loadFS(ctx context.Context, fsys fs.FS, dir string, requireAll bool) (map[Name]CodeList, error) {
	lists := make(map[Name]CodeList, len(Names()))

	for _, name := range Names() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.ToSlash(filepath.Join(dir, string(name)+".yaml"))
		raw, err := fs.ReadFile(fsys, path)
		if errors.Is(err, fs.ErrNotExist) && !requireAll {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error reading code list %s: %w", name, err)
		}

		list, err := parseList(raw)
		if err != nil {
			return nil, fmt.Errorf("error parsing code list %s: %w", name, err)
		}
		lists[name] = list
	}

	return lists, nil
}

func parseList(raw []byte) (CodeList, error) {
	var list CodeList
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}
