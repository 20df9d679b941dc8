package main

import "github.com/ties/voltdb-client-go/cmd"

func main() {
	cmd.Execute()
}
