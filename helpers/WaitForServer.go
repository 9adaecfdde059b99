package helpers

import (
	"net/http"
	"time"
)

// WaitForServer blocks until the translation server answers its health
// check, giving up after five seconds.
func WaitForServer() {
	for i := 0; i < 50; i++ {
		resp, err := http.Get("http://localhost:8080/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}
}
