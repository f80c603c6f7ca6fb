package apps

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"flingr/internal/domain"
)

// dataDirs returns the XDG application directories in precedence order.
func dataDirs() []string {
	var dirs []string

	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		dirs = append(dirs, home)
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share"))
	}

	extra := os.Getenv("XDG_DATA_DIRS")
	if extra == "" {
		extra = "/usr/local/share:/usr/share"
	}
	dirs = append(dirs, filepath.SplitList(extra)...)

	apps := make([]string, 0, len(dirs))
	for _, d := range dirs {
		apps = append(apps, filepath.Join(d, "applications"))
	}
	return apps
}

// parseDesktopFile extracts a launchable record from one .desktop file.
// Only the [Desktop Entry] group matters; entries that are hidden, not
// applications, or lack a name or exec line are rejected.
func parseDesktopFile(path string) (domain.AppRecord, bool) {
	f, err := os.Open(path)
	if err != nil {
		return domain.AppRecord{}, false
	}
	defer f.Close()

	var rec domain.AppRecord
	isApplication := true
	inEntry := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Name":
			if rec.Name == "" { // first Name= wins over localized variants
				rec.Name = strings.TrimSpace(value)
			}
		case "Exec":
			rec.Exec = strings.TrimSpace(value)
		case "Icon":
			rec.HasIcon = strings.TrimSpace(value) != ""
		case "Terminal":
			rec.Terminal = strings.TrimSpace(value) == "true"
		case "Type":
			isApplication = strings.TrimSpace(value) == "Application"
		case "NoDisplay", "Hidden":
			if strings.TrimSpace(value) == "true" {
				return domain.AppRecord{}, false
			}
		}
	}

	if !isApplication || rec.Name == "" || rec.Exec == "" {
		return domain.AppRecord{}, false
	}
	return rec, true
}

// scanDirs parses every .desktop file under the given directories.
// Earlier directories take precedence on duplicate names.
func scanDirs(dirs []string) []domain.AppRecord {
	seen := make(map[string]struct{})
	var records []domain.AppRecord

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".desktop") {
				continue
			}
			rec, ok := parseDesktopFile(filepath.Join(dir, entry.Name()))
			if !ok {
				continue
			}
			key := strings.ToLower(rec.Name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			records = append(records, rec)
		}
	}
	return records
}
