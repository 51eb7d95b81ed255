package main

import (
	"fmt"
	"os"

	"ccledger/qianji-csv/cmd/export"
	"ccledger/qianji-csv/cmd/importcmd"
	"ccledger/qianji-csv/cmd/preview"
	"ccledger/qianji-csv/cmd/root"
	"ccledger/qianji-csv/cmd/validate"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
