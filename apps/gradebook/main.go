package main

import (
	"log"
	"os"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
	logsvc "github.com/trezcool/gradebook/services/logger"
)

func main() {
	std := log.New(os.Stderr, "GRADEBOOK : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(std, conf)

	validate, translator := core.NewValidator()
	grade.InitValidators(validate, translator)

	cli := newCommandLine(validate, translator, conf.TranscriptOrder)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			if pv, ok := err.(*grade.PolicyViolation); ok {
				logger.Warn(pv.Detail())
			} else {
				logger.Error(err.Error(), err)
			}
		}
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
