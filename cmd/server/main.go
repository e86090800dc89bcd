package main

import (
	"os"

	logrus "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("Server exited")
		os.Exit(1)
	}
}
