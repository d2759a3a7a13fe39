package domain

import "context"

// CommandHandler executes one verb with the arguments that followed it.
// The returned string is printed as-is; a returned error is printed in its place.
type CommandHandler interface {
	Execute(ctx context.Context, args []string) (string, error)
}

// Command is a verb plus its arguments, parsed from one script line.
type Command struct {
	Verb string
	Args []string
	Line int
}
