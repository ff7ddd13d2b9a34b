package genomic

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IsSeqFile reports whether a path has a recognized FASTA/FASTQ extension.
func IsSeqFile(path string) bool {
	return formats[strings.ToLower(filepath.Ext(path))] != formatUnknown
}

// FindFiles lists the sequence files in a directory. checkExt filters to
// recognized FASTA/FASTQ extensions and recurse descends into subfolders.
func FindFiles(dir string, recurse, checkExt bool) (paths []string, err error) {
	keep := func(path string) bool {
		return !checkExt || IsSeqFile(path)
	}

	if recurse {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && keep(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %v", dir, err)
		}
		return paths, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if keep(path) {
			paths = append(paths, path)
		}
	}

	return paths, nil
}
