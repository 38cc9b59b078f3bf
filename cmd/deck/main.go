package main

import (
	"fmt"
	"os"
)

// 退出码
const (
	ExitSuccess = 0
	ExitError   = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
