package commands

import (
	"slices"

	"filesort/internal/domain"
	"filesort/internal/logging"
	"filesort/internal/services/files"
	"filesort/internal/services/sorter"
	"filesort/internal/services/trash"
)

// Registry maps verbs to their handlers.
type Registry struct {
	handlers map[string]domain.CommandHandler
}

// NewRegistry wires every built-in verb against fs, moving deleted files into
// trashDir. A nil logger means the process-wide default.
func NewRegistry(fs domain.FileSystemAdapter, trashDir string, logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.Default()
	}

	validator := files.NewValidator(fs, logger)
	reader := files.NewMetadataReader(fs, logger)
	mover := trash.NewMover(fs, trashDir, logger)

	r := &Registry{handlers: make(map[string]domain.CommandHandler)}
	r.Register("help", NewHelpCommand(mover.Dir()))
	r.Register("size", NewSizeCommand(reader, validator, logger))
	r.Register("type", NewTypeCommand(fs, validator, logger))
	r.Register("delete", NewDeleteCommand(mover, validator, logger))
	for _, c := range sorter.All() {
		r.Register(c.Verb(), NewSortCommand(c, validator, reader, logger))
	}
	return r
}

// Register binds verb to handler, replacing any earlier binding.
func (r *Registry) Register(verb string, handler domain.CommandHandler) {
	r.handlers[verb] = handler
}

// Lookup returns the handler for verb.
func (r *Registry) Lookup(verb string) (domain.CommandHandler, bool) {
	h, ok := r.handlers[verb]
	return h, ok
}

// Verbs returns the registered verbs in sorted order.
func (r *Registry) Verbs() []string {
	verbs := make([]string, 0, len(r.handlers))
	for verb := range r.handlers {
		verbs = append(verbs, verb)
	}
	slices.Sort(verbs)
	return verbs
}
