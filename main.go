package main

import "dex-viewer/cmd"

func main() {
	cmd.Execute()
}
