package main

import (
	"github.com/pfrederiksen/plex-telegram-notify/internal/cli"
)

func main() {
	cli.Execute()
}
