package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/papermill_ledger/internal/cli"
)

//go:generate swag init -d ../../ -g cmd/mill_ledger/main.go -o ../docs --outputTypes go

var version = "dev"

// @title Paper Mill Ledger API
// @version 1.0
// @description Read-only ledgers, bank reconciliation and reports over the paper mill's trade, payment, bank and expense records.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("mill_ledger version %s\n", version)
		os.Exit(0)
	}

	cli.Execute()
}
