package main

import "github.com/dmitrymomot/honeypot/cmd/honeypot/cmd"

func main() {
	cmd.Execute()
}
