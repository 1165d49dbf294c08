package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"gitlab.com/dirk.krummacker/contact-book/pkg/model"
)

const serverPort = 8080

// Usage example on the command line:
// > go run main.go
func main() {
	fmt.Println()
	fmt.Println("  Elements      POST       PUT       GET    DELETE ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	for _, loops := range sizes {
		names := createRandomSliceWithNames(loops)
		fmt.Printf("%10d", loops)
		{
			// POST requests
			f := func(name string) int64 {
				return sendPostRequest(name)
			}
			callInLoop(names, f)
		}
		{
			// PUT requests
			f := func(name string) int64 {
				body := jsonBody(model.BirthdayRequest{Birthday: "09.11.1983"})
				return sendRequestForName(http.MethodPut, name, "/birthday", body)
			}
			callInLoop(names, f)
		}
		{
			// GET requests
			f := func(name string) int64 {
				return sendRequestForName(http.MethodGet, name, "", nil)
			}
			callInLoop(names, f)
		}
		{
			// DELETE requests
			f := func(name string) int64 {
				return sendRequestForName(http.MethodDelete, name, "", nil)
			}
			callInLoop(names, f)
		}
		fmt.Println()
	}
}

// callInLoop calls f for every name in random order and prints the mean duration in
// microseconds.
func callInLoop(names []string, f func(name string) int64) {
	shuffled := make([]string, len(names))
	copy(shuffled, names)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	var duration int64
	for _, name := range shuffled {
		duration += f(name)
	}
	fmt.Printf("%10d", duration/int64(len(names)*1000))
}

func createRandomSliceWithNames(loops int) []string {
	prefix := rand.Int63()
	names := make([]string, 0, loops)
	for i := 0; i < loops; i++ {
		names = append(names, fmt.Sprintf("Marcus-%d-%d", prefix, i))
	}
	return names
}

func jsonBody(v any) io.Reader {
	body, err := json.Marshal(v)
	if err != nil {
		fmt.Println("could not marshal JSON", err)
		panic(err)
	}
	return bytes.NewReader(body)
}

func sendPostRequest(name string) int64 {
	requestURL := fmt.Sprintf("http://localhost:%d/contacts", serverPort)
	body := jsonBody(model.Contact{Name: name, Phones: []string{"3999777555"}})
	resBody, duration := sendRequest(http.MethodPost, requestURL, body)
	var contact model.Contact
	err := json.Unmarshal(resBody, &contact)
	if err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	return duration
}

func sendRequestForName(method string, name string, suffix string, bodyReader io.Reader) int64 {
	requestURL := fmt.Sprintf("http://localhost:%d/contacts/%s%s", serverPort, url.PathEscape(name), suffix)
	_, duration := sendRequest(method, requestURL, bodyReader)
	return duration
}

func sendRequest(method string, requestURL string, bodyReader io.Reader) ([]byte, int64) {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	before := time.Now().UnixNano()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	after := time.Now().UnixNano()
	return resBody, after - before
}
