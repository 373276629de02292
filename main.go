package main

import "github.com/greydoubt/polyrhythmix/cmd"

func main() {
	cmd.Execute()
}
