package main

import "github.com/hearthlab/fuelcast-cli/cmd"

func main() {
	cmd.Execute()
}
