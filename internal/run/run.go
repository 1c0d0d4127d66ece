// Package run records pipeline runs as JSON manifests so artifacts can be
// traced back to the seed and parameters that produced them.
package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/homestat-cli/internal/utils"
)

// Artifact is one file produced by a run.
type Artifact struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Kind string `json:"kind"` // csv|xlsx|chart|report
}

// Run is the manifest of one pipeline invocation.
type Run struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Seed      int64      `json:"seed"`
	Samples   int        `json:"samples"`
	RowsRaw   int        `json:"rows_raw"`
	RowsClean int        `json:"rows_clean,omitempty"`
	Artifacts []Artifact `json:"artifacts"`
}

// New constructs an in-memory run manifest. Call Save to persist.
func New(seed int64, samples int) *Run {
	return &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Seed:      seed,
		Samples:   samples,
	}
}

// AddArtifact appends a produced file to the manifest.
func (r *Run) AddArtifact(path, kind string) {
	r.Artifacts = append(r.Artifacts, Artifact{
		Name: filepath.Base(path),
		Path: path,
		Kind: kind,
	})
}

// Save writes the manifest as run-<id>.json under dir using atomic write.
func (r *Run) Save(dir string) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure runs dir: %w", err)
	}
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "run-"+r.ID+".json")
	if err := utils.SafeWriteFile(path, data); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// Load reads a single manifest file.
func Load(path string) (*Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var r Run
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &r, nil
}

// List returns every manifest under dir, newest first. A missing dir is
// treated as an empty list.
func List(dir string) ([]*Run, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read runs dir: %w", err)
	}
	var runs []*Run
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "run-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		r, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].CreatedAt.After(runs[j].CreatedAt) })
	return runs, nil
}
