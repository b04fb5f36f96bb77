package main

import "github.com/zjx20/benglish-gemini/cmd"

func main() {
	cmd.Execute()
}
