package main

import "folderstar/cmd/folderstar-cli/cmd"

func main() {
	cmd.Execute()
}
