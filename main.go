package main

import "github.com/flowstack-io/flowstack/internal/cmd"

func main() {
	cmd.Execute()
}
