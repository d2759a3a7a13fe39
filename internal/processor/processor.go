// Package processor reads a command script and dispatches each line to its
// handler.
package processor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"filesort/internal/domain"
	"filesort/internal/logging"
)

// Registry resolves verbs to handlers.
type Registry interface {
	Lookup(verb string) (domain.CommandHandler, bool)
}

// Stats summarizes one script run.
type Stats struct {
	Lines    int
	Executed int
	Failed   int
	Unknown  int
}

// Processor executes command scripts line by line.
type Processor struct {
	fs       domain.FileSystemAdapter
	registry Registry
	out      io.Writer
	logger   *logging.Logger
}

// New creates a new processor that prints command output to out. A nil
// logger means the process-wide default.
func New(fs domain.FileSystemAdapter, registry Registry, out io.Writer, logger *logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Processor{
		fs:       fs,
		registry: registry,
		out:      out,
		logger:   logger,
	}
}

// Run executes every command in the script at path. Problems with individual
// commands are printed and never stop the run; the returned error is non-nil
// only when ctx is cancelled.
func (p *Processor) Run(ctx context.Context, path string) (Stats, error) {
	info, err := p.fs.Stat(path)
	if err != nil || info.IsDir() {
		p.printf("Input file not found: %s\n", path)
		return Stats{}, nil
	}

	data, err := p.fs.ReadFile(path)
	if err != nil {
		p.printf("Failed to read input file: %v\n", err)
		return Stats{}, nil
	}

	p.logger.DebugContext(ctx, "Processing script", "path", path, "bytes", len(data))
	return p.executeLines(ctx, splitLines(string(data)))
}

// Execute runs the commands read from r.
func (p *Processor) Execute(ctx context.Context, r io.Reader) (Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		p.printf("Failed to read input file: %v\n", err)
		return Stats{}, nil
	}
	return p.executeLines(ctx, splitLines(string(data)))
}

func (p *Processor) executeLines(ctx context.Context, lines []string) (Stats, error) {
	var stats Stats
	for i, line := range lines {
		lineNo := i + 1
		if err := ctx.Err(); err != nil {
			p.logger.WarnContext(ctx, "Stopping before line", "line", lineNo, "error", err)
			return stats, err
		}

		cmd, ok := Parse(line)
		if !ok {
			continue
		}
		cmd.Line = lineNo
		stats.Lines++

		p.dispatch(ctx, cmd, &stats)
	}

	p.logger.InfoContext(ctx, "Script finished",
		"commands", stats.Lines,
		"executed", stats.Executed,
		"failed", stats.Failed,
		"unknown", stats.Unknown)
	return stats, nil
}

func (p *Processor) dispatch(ctx context.Context, cmd domain.Command, stats *Stats) {
	logger := p.logger.WithOperation(cmd.Verb).WithFields(map[string]any{"line": cmd.Line})

	handler, ok := p.registry.Lookup(cmd.Verb)
	if !ok {
		stats.Unknown++
		logger.DebugContext(ctx, "Unknown verb")
		p.printf("Unknown command: %s\n", cmd.Verb)
		return
	}

	logger.DebugContext(ctx, "Dispatching command", "args", len(cmd.Args))
	out, err := handler.Execute(ctx, cmd.Args)
	if err != nil {
		stats.Failed++
		logger.DebugContext(ctx, "Command failed", "error", err)
		p.printf("%s\n", err.Error())
		return
	}

	stats.Executed++
	p.printf("%s\n", out)
}

func (p *Processor) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		p.logger.Error("Failed to write output", "error", err)
	}
}

// splitLines splits a script on \n, \r\n or a lone \r. Lines have no length
// limit.
func splitLines(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.ReplaceAll(data, "\r", "\n")
	return strings.Split(data, "\n")
}

// Parse splits a script line into a command. Blank lines yield ok == false.
// Only ASCII whitespace separates words; other Unicode spaces stay part of a
// word. Control characters are trimmed from both ends.
func Parse(line string) (domain.Command, bool) {
	trimmed := strings.TrimFunc(line, func(r rune) bool { return r <= ' ' })
	fields := strings.FieldsFunc(trimmed, isASCIISpace)
	if len(fields) == 0 {
		return domain.Command{}, false
	}
	return domain.Command{Verb: fields[0], Args: fields[1:]}, true
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
