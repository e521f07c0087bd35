// Command timestep prints the points of a date, date-time or instant
// progression, one per line.
//
//	timestep dates 2024-02-26 2024-05-15 --step P1M
//	timestep datetimes 2023-10-26T10:30 2023-10-29T12:00 --step PT3H --zone Europe/Berlin
//	timestep instants 2024-01-01T00:00:00Z 2024-01-02T00:00:00Z --cron "0 */6 * * *"
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/reugn/go-timerange/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
