package main

import "bordero/internal/cli"

func main() {
	cli.Execute()
}
