package main

import (
	"os"

	"github.com/siyuan-infoblox/order-includes/pkg/cmd"
	"github.com/siyuan-infoblox/order-includes/pkg/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
