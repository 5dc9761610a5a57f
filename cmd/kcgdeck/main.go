package main

import "github.com/youruser/kcgdeck/cmd/kcgdeck/cmd"

func main() {
	cmd.Execute()
}
