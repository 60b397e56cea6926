package main

import "github.com/kagazlabs/kagaz-cli/cmd"

func main() {
	cmd.Execute()
}
