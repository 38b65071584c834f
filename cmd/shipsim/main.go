package main

import "shipsim/internal/game"

func main() {
	game.RunDesktop()
}
