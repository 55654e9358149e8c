package main

import "github.com/KaramelBytes/wordheat/cmd"

func main() {
	cmd.Execute()
}
