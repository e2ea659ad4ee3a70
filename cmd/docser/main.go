// Command docser extracts the main content from rendered HTML documents,
// removing navigation, advertising, and compliance boilerplate. It reads
// HTML from files or stdin and writes the sanitized fragment (or its
// Markdown/text rendition) to stdout.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
