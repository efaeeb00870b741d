package main

import "github.com/qaudit/qaudit/cmd"

func main() {
	cmd.Execute()
}
