package main

import "hypr-switch/internal/cli"

func main() {
	cli.Execute()
}
