package main

import (
	"playstore-scraper/cmd/playstore-cli/commands"
	"playstore-scraper/internal/components/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
