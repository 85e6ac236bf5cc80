package config

import "strings"

// ==================== 基础配置 (所有服务都需要) ====================

// AppConfig 应用基础配置
type AppConfig struct {
	Name   string `yaml:"name" mapstructure:"name"`
	Env    string `yaml:"env" mapstructure:"env"`
	Port   int    `yaml:"port" mapstructure:"port"`
	NodeID string `yaml:"node_id" mapstructure:"node_id"`
}

// IsProduction reports whether Env names a production deployment
// ("prod" or "production", case-insensitive).
func (a AppConfig) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(a.Env)) {
	case "prod", "production":
		return true
	}
	return false
}

// LogConfig 日志配置
type LogConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	Level        string `yaml:"level" mapstructure:"level"`
	ReportCaller bool   `yaml:"report_caller" mapstructure:"report_caller"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
}

// ==================== 基础设施配置 ====================

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Db       int    `yaml:"db" mapstructure:"db"`
}

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	Enabled       bool     `yaml:"enabled" mapstructure:"enabled"`
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`
	RequiredAcks  string   `yaml:"required_acks" mapstructure:"required_acks"`
	MaxAttempts   int      `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// ==================== 故障边界配置 ====================

// FaultConfig 故障分类与上报配置
type FaultConfig struct {
	// Production 为空时由 AppConfig.Env 推导
	Production     *bool    `yaml:"production" mapstructure:"production"`
	Domain         string   `yaml:"domain" mapstructure:"domain"`
	JournalEnabled bool     `yaml:"journal_enabled" mapstructure:"journal_enabled"`
	JournalTopic   string   `yaml:"journal_topic" mapstructure:"journal_topic"`
	JournalPrefix  string   `yaml:"journal_prefix" mapstructure:"journal_prefix"`
	JournalTTL     Duration `yaml:"journal_ttl" mapstructure:"journal_ttl"`
}

// IsProduction 返回是否在响应中剥离 details
func (f FaultConfig) IsProduction(app AppConfig) bool {
	if f.Production != nil {
		return *f.Production
	}
	return app.IsProduction()
}

// HeaderConfig 请求头校验配置
type HeaderConfig struct {
	RequireUserInfo bool     `yaml:"require_user_info" mapstructure:"require_user_info"`
	SkipPrefixes    []string `yaml:"skip_prefixes" mapstructure:"skip_prefixes"`
}

// Skips reports whether path starts with one of SkipPrefixes.
func (h HeaderConfig) Skips(path string) bool {
	for _, p := range h.SkipPrefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// ==================== 可观测性配置 ====================

// TracingConfig 分布式追踪配置
type TracingConfig struct {
	Exporter     string            `yaml:"exporter" mapstructure:"exporter"`
	Endpoint     string            `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string            `yaml:"service_name" mapstructure:"service_name"`
	Insecure     bool              `yaml:"insecure" mapstructure:"insecure"`
	Headers      map[string]string `yaml:"headers" mapstructure:"headers"`
	SampleRatio  float64           `yaml:"sample_ratio" mapstructure:"sample_ratio"`
	ResourceTags map[string]string `yaml:"resource_tags" mapstructure:"resource_tags"`
	// CloudRoleName 写入 cloud.role 资源属性, 为空时使用 ServiceName
	CloudRoleName string `yaml:"cloud_role_name" mapstructure:"cloud_role_name"`
	ChannelID     string `yaml:"channel_id" mapstructure:"channel_id"`
}

// ==================== 组合配置 ====================

// ServiceConfig 是挂载故障边界的服务的完整配置
type ServiceConfig struct {
	App     AppConfig     `yaml:"app" mapstructure:"app"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka" mapstructure:"kafka"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Fault   FaultConfig   `yaml:"fault" mapstructure:"fault"`
	Headers HeaderConfig  `yaml:"headers" mapstructure:"headers"`
}
