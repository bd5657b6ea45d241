package main

import "focusarena/cmd/arena/root"

func main() {
	root.Execute()
}
