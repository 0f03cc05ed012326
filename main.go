package main

import "thumbnail-manager/cmd"

func main() {
	cmd.Execute()
}
