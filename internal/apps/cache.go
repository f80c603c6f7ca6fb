package apps

import (
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"flingr/internal/domain"
)

// scanCache is the msgpack snapshot of one desktop-entry scan, keyed by
// the mtimes of the scanned directories so stale snapshots self-expire.
type scanCache struct {
	DirStamps map[string]int64   `msgpack:"dir_stamps"`
	Records   []domain.AppRecord `msgpack:"records"`
}

func dirStamps(dirs []string) map[string]int64 {
	stamps := make(map[string]int64, len(dirs))
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			stamps[dir] = 0
			continue
		}
		stamps[dir] = info.ModTime().Unix()
	}
	return stamps
}

func loadScanCache(path string, dirs []string) ([]domain.AppRecord, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var cache scanCache
	if err := msgpack.Unmarshal(data, &cache); err != nil {
		return nil, false
	}

	current := dirStamps(dirs)
	if len(current) != len(cache.DirStamps) {
		return nil, false
	}
	for dir, stamp := range current {
		if cache.DirStamps[dir] != stamp {
			return nil, false
		}
	}
	return cache.Records, true
}

func saveScanCache(path string, dirs []string, records []domain.AppRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := msgpack.Marshal(scanCache{
		DirStamps: dirStamps(dirs),
		Records:   records,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
