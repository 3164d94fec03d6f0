package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/domain"
)

// ErrInvalidRun is returned when saving a run without an ID.
var ErrInvalidRun = errors.New("invalid run: missing ID")

// FS stores each run as dir/runs/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) runsDir() string { return filepath.Join(s.dir, "runs") }

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.runsDir(), filepath.Base(strings.TrimSpace(id))+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.Run) error {
	if r == nil || strings.TrimSpace(r.ID) == "" {
		return ErrInvalidRun
	}
	target := s.pathFor(r.ID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, "create runs dir")
	}
	f, err := os.Create(target)
	if err != nil {
		return errors.Wrapf(err, "save run %s", r.ID)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Run, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, errors.Wrapf(err, "load run %s", id)
	}
	var out domain.Run
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, "decode run %s", id)
	}
	return &out, nil
}

// List returns every readable run, newest first. Unreadable files are skipped.
func (s *FS) List(ctx context.Context) ([]domain.RunMeta, error) {
	ents, err := os.ReadDir(s.runsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "list runs")
	}
	var out []domain.RunMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.runsDir(), e.Name()))
		if err != nil {
			continue
		}
		var r domain.Run
		if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
			continue
		}
		out = append(out, domain.RunMeta{
			ID:        r.ID,
			Name:      r.Name,
			Solutions: len(r.Solutions),
			CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
