package config

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Duration 支持 YAML/JSON 反序列化，单位为秒
// 可以从数字（秒数）或字符串（如 "30s"）解析
type Duration int64

// Duration 返回 time.Duration 值
func (d Duration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// Seconds 返回秒数
func (d Duration) Seconds() int64 {
	return int64(d)
}

// SecondsInt 返回 int 类型的秒数
func (d Duration) SecondsInt() int {
	return int(d)
}

// ParseDuration 解析 "90"、"90s"、"1h30m" 等形式
func ParseDuration(s string) (Duration, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Duration(n), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return Duration(d / time.Second), nil
}

var durationType = reflect.TypeOf(Duration(0))

// durationHook 是 mapstructure 的解码钩子，字符串交给 ParseDuration
func durationHook(from, to reflect.Type, data any) (any, error) {
	if to != durationType {
		return data, nil
	}
	if from.Kind() == reflect.String {
		return ParseDuration(reflect.ValueOf(data).String())
	}
	return data, nil
}
