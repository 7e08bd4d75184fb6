// Command argvdump prints the structure go-argv extracts from an argument
// vector.
//
//	argvdump app.py ls -lar 42
//	argvdump --format json -- app.py --print "My message" -i
//	argvdump --get=-v -- app.py -v /var/www -i -v /var/bin/bash
//
// Use "--" before the vector when its first token starts with a dash.
package main

import (
	"os"

	"github.com/dzonerzy/go-argv/termio"
)

func main() {
	os.Exit(run(os.Args[1:], termio.New(), os.Exit))
}
