package monitor

import "go.uber.org/zap"

var logger *zap.SugaredLogger

func init() {
	l, err := zap.NewDevelopment()
	defer l.Sync() // flushes buffer, if any
	logger = l.Sugar()

	if err != nil {
		panic(err)
	}
}
