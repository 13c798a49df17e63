package discord

import (
	"log"
	"time"
)

// step loguea cuánto tardó un tramo del dispatch.
func step(label string) func() {
	start := time.Now()
	return func() { log.Printf("[trace] %s = %s", label, time.Since(start)) }
}
