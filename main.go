package main

import "github.com/nexhub-io/nexctl/cmd"

func main() {
	cmd.Execute()
}
