package main

import (
	"log"

	"assetrisk/cmd"

	_ "github.com/lib/pq"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(8080)
	if err != nil {
		log.Fatal(err)
	}
}
