// Command deck-export writes the grant slide decks as standalone HTML files
package main

import (
	"os"

	"github.com/go-while/go-grantdecks/cmd/deck-export/commands"
)

var appVersion = "-unset-"

func main() {
	if err := commands.Execute(appVersion); err != nil {
		os.Exit(1)
	}
}
