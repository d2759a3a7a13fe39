package processor_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"filesort/internal/commands"
	"filesort/internal/logging"
	"filesort/internal/processor"
	"filesort/internal/testutil"
)

// ProcessorTestSuite runs scripts against an in-memory filesystem.
type ProcessorTestSuite struct {
	suite.Suite

	ctx  context.Context
	fs   afero.Fs
	out  *bytes.Buffer
	proc *processor.Processor
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctx = context.Background()
	fs, adapter := testutil.MemFS()
	s.fs = fs
	s.out = &bytes.Buffer{}
	registry := commands.NewRegistry(adapter, "bin/deleted", testutil.Logger())
	s.proc = processor.New(adapter, registry, s.out, testutil.Logger())
}

func (s *ProcessorTestSuite) script(content string) string {
	testutil.WriteFile(s.T(), s.fs, "script.cmd", content, time.Time{})
	return "script.cmd"
}

func (s *ProcessorTestSuite) lines() []string {
	return strings.Split(strings.TrimRight(s.out.String(), "\n"), "\n")
}

func (s *ProcessorTestSuite) TestRun_MixedScript() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testutil.WriteFile(s.T(), s.fs, "a.txt", strings.Repeat("a", 2048), base)
	testutil.WriteFile(s.T(), s.fs, "b.json", "{}", base.Add(time.Hour))

	path := s.script(`
size a.txt

  type    b.json
frobnicate a.txt
alphabetical b.json a.txt
modified a.txt
delete a.txt
size a.txt
`)

	stats, err := s.proc.Run(s.ctx, path)
	s.Require().NoError(err)

	s.Equal([]string{
		"a.txt size: 2.05 kB",
		"b.json type: JSON (.json)",
		"Unknown command: frobnicate",
		"Alphabetical order: a.txt, b.json",
		"Too few arguments. Please provide at least 2 files.",
		"Moved a.txt to " + filepath.Join("bin", "deleted", "a.txt"),
		"File not found: a.txt",
	}, s.lines())

	s.Equal(processor.Stats{Lines: 7, Executed: 4, Failed: 2, Unknown: 1}, stats)
}

func (s *ProcessorTestSuite) TestRun_MissingScript() {
	stats, err := s.proc.Run(s.ctx, "nope.cmd")
	s.Require().NoError(err)
	s.Equal("Input file not found: nope.cmd\n", s.out.String())
	s.Zero(stats.Lines)
}

func (s *ProcessorTestSuite) TestRun_ScriptIsDirectory() {
	s.Require().NoError(s.fs.MkdirAll("scripts", 0o755))

	_, err := s.proc.Run(s.ctx, "scripts")
	s.Require().NoError(err)
	s.Equal("Input file not found: scripts\n", s.out.String())
}

func (s *ProcessorTestSuite) TestRun_EmptyScript() {
	stats, err := s.proc.Run(s.ctx, s.script("\n   \n\t\n"))
	s.Require().NoError(err)
	s.Empty(s.out.String())
	s.Zero(stats.Lines)
}

func (s *ProcessorTestSuite) TestRun_HelpPrintsEveryVerb() {
	_, err := s.proc.Run(s.ctx, s.script("help\n"))
	s.Require().NoError(err)
	s.Contains(s.out.String(), "reverse_modified <file1> <file2> ... <file10>")
}

func (s *ProcessorTestSuite) TestRun_VeryLongLineDoesNotStopScript() {
	testutil.WriteFile(s.T(), s.fs, "a.txt", "", time.Time{})
	long := strings.Repeat("x", 2*1024*1024)

	stats, err := s.proc.Run(s.ctx, s.script("size a.txt\nalphabetical "+long+"\ntype a.txt\n"))
	s.Require().NoError(err)

	s.Equal([]string{
		"a.txt size: 0.00 kB",
		"Too few arguments. Please provide at least 2 files.",
		"a.txt type: Text (.txt)",
	}, s.lines())
	s.Equal(processor.Stats{Lines: 3, Executed: 2, Failed: 1}, stats)
}

func (s *ProcessorTestSuite) TestRun_LineEndings() {
	testutil.WriteFile(s.T(), s.fs, "a.txt", "", time.Time{})

	stats, err := s.proc.Run(s.ctx, s.script("type a.txt\r\nsize a.txt\rtype a.txt"))
	s.Require().NoError(err)

	s.Equal([]string{
		"a.txt type: Text (.txt)",
		"a.txt size: 0.00 kB",
		"a.txt type: Text (.txt)",
	}, s.lines())
	s.Equal(3, stats.Lines)
}

func (s *ProcessorTestSuite) TestRun_NonASCIISpaceIsPartOfVerb() {
	testutil.WriteFile(s.T(), s.fs, "a.txt", "", time.Time{})

	_, err := s.proc.Run(s.ctx, s.script("size\u00a0a.txt\n"))
	s.Require().NoError(err)
	s.Equal("Unknown command: size\u00a0a.txt\n", s.out.String())
}

func (s *ProcessorTestSuite) TestExecute_CancelledContextStops() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	stats, err := s.proc.Execute(ctx, strings.NewReader("help\nhelp\n"))
	s.Require().ErrorIs(err, context.Canceled)
	s.Zero(stats.Lines)
	s.Empty(s.out.String())
}

func TestProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func TestNew_NilLoggerUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := logging.Default()
	logging.SetDefault(logging.NewLogger(logging.Config{
		Level:  logging.LevelDebug,
		Format: logging.FormatText,
		Output: &buf,
	}))
	t.Cleanup(func() { logging.SetDefault(previous) })

	_, adapter := testutil.MemFS()
	var out bytes.Buffer
	proc := processor.New(adapter, commands.NewRegistry(adapter, "", nil), &out, nil)

	_, err := proc.Execute(context.Background(), strings.NewReader("frobnicate\n"))
	require.NoError(t, err)

	assert.Equal(t, "Unknown command: frobnicate\n", out.String())
	assert.Contains(t, buf.String(), "operation=frobnicate")
	assert.Contains(t, buf.String(), "line=1")
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		verb string
		args []string
		ok   bool
	}{
		{"help", "help", []string{}, true},
		{"  size   a.txt  ", "size", []string{"a.txt"}, true},
		{"alphabetical\ta.txt b.txt", "alphabetical", []string{"a.txt", "b.txt"}, true},
		{"", "", nil, false},
		{" \t ", "", nil, false},
		{"size\u00a0a.txt", "size\u00a0a.txt", []string{}, true},
		{"\x00help\x01", "help", []string{}, true},
		{"type\va.txt\fb.txt", "type", []string{"a.txt", "b.txt"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, ok := processor.Parse(tt.line)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.verb, cmd.Verb)
			assert.Equal(t, tt.args, cmd.Args)
		})
	}
}
