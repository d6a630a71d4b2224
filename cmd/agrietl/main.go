// Command agrietl loads the ICRISAT district-level crop statistics file into
// a relational store and renders the standard chart set.
//
//	agrietl run     load the file, then render charts
//	agrietl load    load the file only
//	agrietl report  render charts straight from the file
//	agrietl check   validate configuration and source columns
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	// register all backends with the storage factory.
	_ "agrietl/internal/storage/all"
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
