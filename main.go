package main

import (
	"flag"
	"log"

	"github.com/crewledger/crewpay-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the api server")
	shouldRunScheduler := flag.Bool("scheduler", false, "Run the claims processing scheduler")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunScheduler {
		if err := cmd.RunScheduler(); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
