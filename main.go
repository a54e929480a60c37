package main

import "github.com/AshutoshKD/MonkeyChat/cmd"

func main() {
	cmd.Execute()
}
