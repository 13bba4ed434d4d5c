package main

import "wikimap/cmd/wikimap-cli/cmd"

func main() {
	cmd.Execute()
}
