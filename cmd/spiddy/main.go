// Command spiddy is the lambda calculus pipeline's CLI: compile, bench, and
// gen, replacing the original Rust project's three separate binaries with
// one cobra-based multi-command tool.
package main

import (
	"log"
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
