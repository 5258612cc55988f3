package main

import "github.com/toyz/compat-migrate/internal/cli"

func main() {
	cli.Execute()
}
