package main

import "github.com/theirongolddev/goaltrack/cmd"

func main() {
	cmd.Execute()
}
