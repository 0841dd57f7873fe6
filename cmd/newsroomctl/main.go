// Command newsroomctl is the operator CLI: schema migrations, user seeding,
// role changes and development access tokens.
//
// Usage:
//
//	newsroomctl migrate up
//	newsroomctl seed users.yaml
//	newsroomctl set-roles <user-id> --role ADMIN
//	newsroomctl issue-token <user-id>
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/newsroom-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "newsroomctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}
