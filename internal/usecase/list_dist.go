package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pyframe/shipit/internal/domain"
)

// ListDistInput contains the parameters for the dist inventory.
type ListDistInput struct {
	Dir string // Project root directory (required)
}

// DistArchive describes one built distribution archive.
type DistArchive struct {
	Name   string `yaml:"name"`
	SHA256 string `yaml:"sha256"`
	Size   int64  `yaml:"size"`
}

// ListDistOutput contains the dist inventory.
type ListDistOutput struct {
	Archives []DistArchive `yaml:"archives"`
}

// ListDist is the use case for listing built distribution archives.
type ListDist struct{}

// NewListDist creates a new ListDist use case.
func NewListDist() *ListDist {
	return &ListDist{}
}

// Execute lists the files in dist with size and content digest, sorted by
// name. An empty or missing dist directory returns ErrNoDistArchives.
func (uc *ListDist) Execute(_ context.Context, in ListDistInput) (*ListDistOutput, error) {
	entries, err := os.ReadDir(filepath.Join(in.Dir, "dist"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoDistArchives
		}
		return nil, fmt.Errorf("read dist: %w", err)
	}

	var archives []DistArchive
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(in.Dir, "dist", entry.Name())
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		digest, err := fileDigest(path)
		if err != nil {
			return nil, err
		}
		archives = append(archives, DistArchive{
			Name:   entry.Name(),
			Size:   info.Size(),
			SHA256: digest,
		})
	}
	if len(archives) == 0 {
		return nil, domain.ErrNoDistArchives
	}

	sort.Slice(archives, func(i, j int) bool { return archives[i].Name < archives[j].Name })
	return &ListDistOutput{Archives: archives}, nil
}

// fileDigest returns the hex-encoded SHA-256 digest of the file contents.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 - path comes from the dist listing
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
