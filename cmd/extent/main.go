package main

import "github.com/akmonengine/extent/cmd"

func main() {
	cmd.Execute()
}
