package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		os.Exit(exitOK)
	}

	var ee exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(os.Stderr, ee.Error())
		os.Exit(ee.code)
	}

	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(exitInternalFailed)
}
