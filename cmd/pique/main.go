package main

import (
	"github.com/dixieflatline76/Pique/config"
	"github.com/dixieflatline76/Pique/ui"
	"github.com/dixieflatline76/Pique/util/log"
)

func main() {
	ok, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !ok {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	pa := ui.GetInstance()
	if pa == nil {
		log.Fatalf("Failed to initialize %s", config.AppName)
	}
	pa.Run()
}
