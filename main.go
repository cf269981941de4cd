// Grimoire is a small daemon which finds releases, songs, lyrics and images in
// the Metal Archives catalog and serves them over an HTTP API.
//
// This file is only here to make installing with go install easier. The source
// is stashed in the src directory instead of the project root.
package main

import "github.com/ironsmile/grimoire/src"

func main() {
	src.Main()
}
