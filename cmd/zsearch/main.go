package main

import "github.com/coregx/zsearch/cmd/zsearch/cmd"

func main() {
	cmd.Execute()
}
