package bootstrap

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/service-lib/pkg/fault"
)

// faultHook 把 error 字段中的 ServiceFault 展开为独立字段
// details 以 "detail." 前缀写入，已有字段不覆盖
type faultHook struct{}

func (faultHook) Levels() []log.Level {
	return log.AllLevels
}

func (faultHook) Fire(entry *log.Entry) error {
	err, ok := entry.Data[log.ErrorKey].(error)
	if !ok {
		return nil
	}
	var f *fault.ServiceFault
	if !errors.As(err, &f) || f == nil {
		return nil
	}
	se := f.ServiceError()
	setIfAbsent(entry, "code", int(se.Code()))
	setIfAbsent(entry, "code_name", se.CodeName())
	if id := se.CorrelationID(); id != "" {
		setIfAbsent(entry, "correlation_id", id)
	}
	for k, v := range se.Details() {
		setIfAbsent(entry, "detail."+k, v)
	}
	return nil
}

func setIfAbsent(entry *log.Entry, key string, value any) {
	if _, ok := entry.Data[key]; !ok {
		entry.Data[key] = value
	}
}
