// @title Currency Delta API
// @version 1.0
// @description Deviation of the latest exchange rates from parity for a set of currencies.
// @BasePath /api
package main

import (
	"fxdelta/internal/app"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
