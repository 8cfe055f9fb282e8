package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/goose/internal/goose/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := goose(); err != nil {
		logrus.Fatal(err)
	}
}

func goose() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
