package main

import "github.com/ooyeku/csvcore/cmd/csvcore/cli"

func main() {
	cli.Execute()
}
