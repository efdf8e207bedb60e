package main

import (
	"squall/pkg/squall"
	"squall/suites/demo"
)

func main() {
	suite := squall.NewSuite("demo")

	// Declare the demonstration scenarios
	demo.Declare(suite)

	suite.Main()
}
