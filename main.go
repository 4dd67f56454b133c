package main

import "github.com/Paintersrp/corkboard/cmd"

func main() {
	cmd.Execute()
}
