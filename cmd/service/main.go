// @title        Comissiona API
// @version      1.0
// @description  Loan-proposal tracking and commission management backend
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"log"

	_ "comissiona/docs"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
