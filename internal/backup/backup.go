package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Manager copies the database file to and from a backup directory. It must
// not run while a write transaction is open; the caller invokes it only when
// the application is otherwise idle.
type Manager struct {
	dbPath string
	dir    string
}

type Snapshot struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Modified time.Time `json:"modified"`
	Size     int64     `json:"size"`
}

func NewManager(dbPath, dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}
	return &Manager{dbPath: dbPath, dir: dir}, nil
}

// Create copies the live database into the backup directory and returns the
// snapshot path.
func (m *Manager) Create() (string, error) {
	stamp := time.Now().Format("20060102-150405")
	name := fmt.Sprintf("backup-%s-%s.db", stamp, uuid.NewString()[:8])
	dest := filepath.Join(m.dir, name)
	if err := copyFile(m.dbPath, dest); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	return dest, nil
}

// List returns known snapshots, newest first.
func (m *Manager) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	snapshots := []Snapshot{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		snapshots = append(snapshots, Snapshot{
			Name:     entry.Name(),
			Path:     filepath.Join(m.dir, entry.Name()),
			Modified: info.ModTime(),
			Size:     info.Size(),
		})
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Modified.After(snapshots[j].Modified)
	})
	return snapshots, nil
}

// Restore copies a snapshot over the live database file. The snapshot must
// live inside the backup directory.
func (m *Manager) Restore(name string) error {
	src, err := m.resolve(name)
	if err != nil {
		return err
	}
	if err := copyFile(src, m.dbPath); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	return nil
}

// Delete removes a snapshot.
func (m *Manager) Delete(name string) error {
	path, err := m.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete backup: %w", err)
	}
	return nil
}

// resolve maps a snapshot name to a path inside the backup directory,
// rejecting anything that would escape it.
func (m *Manager) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid backup name %q", name)
	}
	path := filepath.Join(m.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("backup %q: %w", name, err)
	}
	return path, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
