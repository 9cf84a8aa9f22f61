package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL    = "http://localhost:8080/orders"
	knownEmail = "supplier@acme.com"
)

var stores = []string{"acme", "globex", "initech"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	req, err := http.NewRequest(http.MethodGet, baseURL, nil)
	if err != nil {
		fmt.Println("failed to build request:", err)
		return
	}

	// Mix authenticated calls with anonymous store-parameter fallbacks.
	if rand.Intn(2) == 0 {
		req.Header.Set("X-User-Email", knownEmail)
	} else {
		q := req.URL.Query()
		q.Set("store", stores[rand.Intn(len(stores))])
		req.URL.RawQuery = q.Encode()
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()

	fmt.Println(req.URL.String(), "->", resp.Status)
}
