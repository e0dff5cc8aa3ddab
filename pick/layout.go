package pick

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	BoxesDir    = "boxes_and_transcripts"
	EntitiesDir = "entities"
	ImagesDir   = "images"

	BoxesExt    = ".tsv"
	EntitiesExt = ".txt"
	ImageExt    = ".jpg"
)

// Layout locates the three output directories under one folder.
type Layout struct {
	Folder string
}

func (l Layout) BoxesDir() string    { return filepath.Join(l.Folder, BoxesDir) }
func (l Layout) EntitiesDir() string { return filepath.Join(l.Folder, EntitiesDir) }
func (l Layout) ImagesDir() string   { return filepath.Join(l.Folder, ImagesDir) }

func (l Layout) BoxesPath(name string) string {
	return filepath.Join(l.BoxesDir(), name+BoxesExt)
}

func (l Layout) EntitiesPath(name string) string {
	return filepath.Join(l.EntitiesDir(), name+EntitiesExt)
}

func (l Layout) ImagePath(name string) string {
	return filepath.Join(l.ImagesDir(), name+ImageExt)
}

func (l Layout) dirs() []string {
	return []string{l.BoxesDir(), l.EntitiesDir(), l.ImagesDir()}
}

// Exists reports whether all three directories are present.
func (l Layout) Exists() bool {
	for _, d := range l.dirs() {
		fi, err := os.Stat(d)
		if err != nil || !fi.IsDir() {
			return false
		}
	}
	return true
}

// Ensure creates the three directories when any of them is missing. The
// folder itself must already exist.
func (l Layout) Ensure() error {
	if l.Exists() {
		return nil
	}

	for _, d := range l.dirs() {
		log.Printf("Creating directory %s", d)
		if err := os.Mkdir(d, 0o755); err != nil && !os.IsExist(err) {
			return fmt.Errorf("pick: create %s: %w", d, err)
		}
	}

	return nil
}

// ListDocuments returns the sorted base names that have a boxes file.
func ListDocuments(folder string) (ret []string, err error) {
	lst, err := os.ReadDir(Layout{Folder: folder}.BoxesDir())
	if err != nil {
		return
	}

	ret = make([]string, 0, len(lst))
	for _, f := range lst {
		if f.IsDir() || !strings.HasSuffix(f.Name(), BoxesExt) || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		ret = append(ret, strings.TrimSuffix(f.Name(), BoxesExt))
	}

	sort.Strings(ret)
	return
}
