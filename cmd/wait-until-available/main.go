package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
)

// CLI holds the flags of the availability check.
//
// Usage example on the command line:
// > go run main.go --url=http://localhost:8080/birthdays --interval=2s
type CLI struct {
	URL      string        `help:"Endpoint to poll." default:"http://localhost:8080/birthdays"`
	Interval time.Duration `help:"Time between two attempts." default:"5s"`
}

// Run polls the endpoint until it answers with the OK status code.
func (c *CLI) Run() error {
	if c.Interval <= 0 {
		return fmt.Errorf("invalid interval %s", c.Interval)
	}
	var totalWaitTime time.Duration
	for {
		res, err := http.Get(c.URL)
		if err == nil {
			res.Body.Close()
			fmt.Println(res.Status)
			if res.StatusCode == http.StatusOK {
				return nil
			}
		} else {
			fmt.Println(err)
		}
		totalWaitTime += c.Interval
		fmt.Printf("Waiting %s\n", totalWaitTime)
		time.Sleep(c.Interval)
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wait-until-available"),
		kong.Description("Waits until the contact book service answers."))
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
