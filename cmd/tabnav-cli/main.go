package main

import "tabnav/cmd/tabnav-cli/cmd"

func main() {
	cmd.Execute()
}
