// Command crossuuid generates, parses and self-checks UUIDs.
//
//	crossuuid [-config URL] [-source NAME] [-trace FILE] [-n N] [-strict] [check|gen|parse] [args]
//
// check (the default) generates a UUID, stringifies it, parses it back, compares and clears it,
// exiting with status 1 on the first failing step.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
