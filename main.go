package main

import "github.com/career-navigator/apiserver/cmd"

func main() {
	cmd.Execute()
}
