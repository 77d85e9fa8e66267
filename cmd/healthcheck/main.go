package main

import (
	"net/http"
	"os"
	"time"
)

// Container healthcheck: probe the version endpoint on the default port.
func main() {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://127.0.0.1:3001/api/version")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
