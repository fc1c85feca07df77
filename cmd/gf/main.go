package main

import "goalforge/cmd/gf/root"

func main() {
	root.Execute()
}
