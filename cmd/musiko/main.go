// Command musiko answers music-theory questions through relational
// queries over notes, intervals and chords.
package main

import "github.com/gitrdm/gomusiko/internal/cli"

func main() {
	cli.Execute()
}
