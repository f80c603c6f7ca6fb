package search

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"flingr/internal/logger"
)

// FileSearcher shells out to whichever file-search tool is installed,
// in order of speed: fd, then locate/plocate, then a bounded walk of
// the home directory as a last resort.
type FileSearcher struct {
	root string
	log  *log.Logger
}

// NewFileSearcher creates a searcher rooted at the user's home.
func NewFileSearcher() *FileSearcher {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/"
	}
	return &FileSearcher{root: home, log: logger.New("files")}
}

// Search returns up to limit absolute paths matching query.
func (s *FileSearcher) Search(query string, limit int) ([]string, error) {
	if paths, err := s.runFd(query, limit); err == nil {
		return paths, nil
	}
	if paths, err := s.runLocate(query, limit); err == nil {
		return paths, nil
	}
	return s.walk(query, limit)
}

func (s *FileSearcher) runFd(query string, limit int) ([]string, error) {
	bin, err := exec.LookPath("fd")
	if err != nil {
		return nil, err
	}
	out, err := exec.Command(bin,
		"--ignore-case",
		"--absolute-path",
		"--max-results", strconv.Itoa(limit),
		query, s.root,
	).Output()
	if err != nil {
		return nil, fmt.Errorf("fd: %w", err)
	}
	return splitLines(out, limit), nil
}

func (s *FileSearcher) runLocate(query string, limit int) ([]string, error) {
	bin, err := exec.LookPath("plocate")
	if err != nil {
		bin, err = exec.LookPath("locate")
	}
	if err != nil {
		return nil, err
	}
	out, err := exec.Command(bin, "-i", "-l", strconv.Itoa(limit), query).Output()
	if err != nil {
		return nil, fmt.Errorf("locate: %w", err)
	}
	return splitLines(out, limit), nil
}

// walk is the no-tools fallback. It stops as soon as limit matches are
// collected so the worst case is bounded by the cap, not disk size.
func (s *FileSearcher) walk(query string, limit int) ([]string, error) {
	q := strings.ToLower(query)
	paths := make([]string, 0, limit)

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		name := d.Name()
		if d.IsDir() && len(name) > 1 && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		if strings.Contains(strings.ToLower(name), q) {
			paths = append(paths, path)
			if len(paths) >= limit {
				return filepath.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return paths, err
	}
	return paths, nil
}

func splitLines(out []byte, limit int) []string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
		if len(paths) >= limit {
			break
		}
	}
	return paths
}
