package service

import (
	"io"

	"github.com/sirupsen/logrus"
)

func logrusTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
