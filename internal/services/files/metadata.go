package files

import (
	"path/filepath"

	"filesort/internal/domain"
	"filesort/internal/errors"
	"filesort/internal/logging"
)

// MetadataReader builds FileReferences from validated paths.
type MetadataReader struct {
	fs     domain.FileSystemAdapter
	logger *logging.Logger
}

// NewMetadataReader creates a new metadata reader.
func NewMetadataReader(fs domain.FileSystemAdapter, logger *logging.Logger) *MetadataReader {
	return &MetadataReader{
		fs:     fs,
		logger: logger,
	}
}

// Read returns the metadata for path.
func (r *MetadataReader) Read(path string) (domain.FileReference, error) {
	name := filepath.Base(path)

	info, err := r.fs.Stat(path)
	if err != nil {
		return domain.FileReference{}, errors.NewMetadataError(name, err)
	}

	ft, err := r.fs.Times(path)
	if err != nil {
		return domain.FileReference{}, errors.NewMetadataError(name, err)
	}
	if !ft.HasBirthTime {
		r.logger.WithFile(path).Debug("No birth time available, using modification time as creation time")
	}

	return domain.FileReference{
		Path:     path,
		Name:     name,
		Size:     info.Size(),
		Created:  ft.Created,
		Modified: ft.Modified,
	}, nil
}

// ReadAll reads metadata for every path, aborting on the first failure.
func (r *MetadataReader) ReadAll(paths []string) ([]domain.FileReference, error) {
	refs := make([]domain.FileReference, 0, len(paths))
	for _, path := range paths {
		ref, err := r.Read(path)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
