package commands

import (
	"context"
	"strings"

	"filesort/internal/services/trash"
)

const helpText = `Available commands:
help
    Prints this help message.
size <file>
    Shows the file size in kB/MB/GB/TB depending on magnitude.
type <file>
    Shows the detected file type (.txt, .json, .csv).
delete <file>
    Moves the file into ` + trash.DefaultDir + ` inside the project directory.
alphabetical <file1> <file2> ... <file10>
    Sorts 2-10 files alphabetically by name.
reverse_alphabetical <file1> <file2> ... <file10>
    Sorts 2-10 files in reverse alphabetical order.
created <file1> <file2> ... <file10>
    Sorts 2-10 files by creation date (oldest first).
reverse_created <file1> <file2> ... <file10>
    Sorts 2-10 files by creation date (newest first).
modified <file1> <file2> ... <file10>
    Sorts 2-10 files by last modification date (newest first).
reverse_modified <file1> <file2> ... <file10>
    Sorts 2-10 files by last modification date (oldest first).
`

// HelpCommand prints the list of available commands.
type HelpCommand struct {
	trashDir string
}

// NewHelpCommand creates a new help command. trashDir is shown in the
// description of delete.
func NewHelpCommand(trashDir string) *HelpCommand {
	return &HelpCommand{trashDir: trashDir}
}

// Execute returns the help text; arguments are ignored.
func (c *HelpCommand) Execute(_ context.Context, _ []string) (string, error) {
	text := helpText
	if c.trashDir != "" && c.trashDir != trash.DefaultDir {
		text = strings.Replace(text, "into "+trash.DefaultDir+" inside the project directory", "into "+c.trashDir, 1)
	}
	return text, nil
}
