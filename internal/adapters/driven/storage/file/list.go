package file

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

// ListNames returns the regular files matching pattern.
//
// Backslashes are treated as separators. Wildcards are only allowed in the
// last path component; the listing covers that one directory and is not
// recursive. Returned names keep the pattern's directory prefix as written.
// A pattern without wildcards returns itself if it names a regular file.
func (s *TextStore) ListNames(pattern string) ([]string, error) {
	wild, err := domain.ContainsWildcards(pattern)
	if err != nil {
		return nil, err
	}

	normalised := strings.ReplaceAll(pattern, `\`, "/")
	names := []string{}

	if !wild {
		if isRegularFile(normalised) {
			names = append(names, pattern)
		}
		return names, nil
	}

	dir, last := path.Split(normalised)
	if strings.ContainsAny(dir, "*?") {
		return nil, fmt.Errorf("%w: %s", domain.ErrWildcardInParent, pattern)
	}

	dirPath := dir
	if dirPath == "" {
		dirPath = "."
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNonexistentParent, dirPath)
		}
		return nil, ioError(dirPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNonexistentParent, dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, ioError(dirPath, err)
	}

	// ReadDir sorts by file name, so names come out sorted.
	for _, entry := range entries {
		if !domain.MatchWildcard(last, entry.Name()) {
			continue
		}
		name := dir + entry.Name()
		if entry.Type().IsRegular() || (entry.Type()&fs.ModeSymlink != 0 && isRegularFile(name)) {
			names = append(names, name)
		}
	}

	return names, nil
}

func isRegularFile(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
