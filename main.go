package main

import "github.com/emrgen/tinytweet/cmd"

func main() {
	cmd.Execute()
}
