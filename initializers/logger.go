package initializers

import (
	log "github.com/sirupsen/logrus"
	"scheduler-backend/fiberlog"
)

func InitLogger(level string) *fiberlog.Config {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	log.SetFormatter(formatter)
	log.SetLevel(logLevel)
	if err != nil {
		log.WithError(err).Warnf("некорректный уровень логирования %q, используется info", level)
	}

	logger := log.New()
	logger.SetFormatter(formatter)
	logger.SetLevel(log.DebugLevel)
	tags := []string{
		fiberlog.TagMethod,
		fiberlog.TagPath,
		fiberlog.TagStatus,
		fiberlog.TagLatency,
		fiberlog.RequestID,
	}
	if logLevel >= log.DebugLevel {
		tags = append(tags, fiberlog.TagBody, fiberlog.TagResBody)
	}
	return &fiberlog.Config{
		Logger: logger,
		Tags:   tags,
		Skip: func(path string) bool {
			return path == "/healthz"
		},
	}
}
