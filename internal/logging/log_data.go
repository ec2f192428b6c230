package logging

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

type LogData struct {
	RequestID      uuid.UUID
	timeItemsMutex *sync.Mutex
	timeItems      map[string]int64
	dataItemsMutex *sync.Mutex
	dataItems      map[string]interface{}
	logger         *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		RequestID:      uuid.Must(uuid.NewV4()),
		timeItemsMutex: &sync.Mutex{},
		timeItems:      make(map[string]int64),
		dataItemsMutex: &sync.Mutex{},
		dataItems:      make(map[string]interface{}),
		logger:         logger,
	}
}

// WithLogData attaches the LogData to a context so handlers further down the
// stack can record fields and timings against the current request.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when the request did not
// pass through the logging middleware (e.g. some tests).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.timeItemsMutex.Lock()
		defer l.timeItemsMutex.Unlock()
		l.timeItems[entryName] = timeSince
	}
}

func (l *LogData) AddToExistingTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.timeItemsMutex.Lock()
		defer l.timeItemsMutex.Unlock()
		l.timeItems[entryName] += timeSince
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.dataItemsMutex.Lock()
	defer l.dataItemsMutex.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)
	entry = entry.WithField("requestID", l.RequestID.String())

	l.dataItemsMutex.Lock()
	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}
	l.dataItemsMutex.Unlock()

	l.timeItemsMutex.Lock()
	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}
	l.timeItemsMutex.Unlock()

	return entry
}
