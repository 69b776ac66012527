package main

import (
	"context"
	"log"

	"github.com/sqlitekit/sqlitekit/internal/shell"
)

func main() {
	if err := shell.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
