package main

import "padnav/cmd/padnav"

func main() {
	padnav.Execute()
}
