package config

// ==================== AppConfig 默认值 ====================

// ApplyDefaults 应用 App 配置默认值
func (a *AppConfig) ApplyDefaults() {
	if a.Env == "" {
		a.Env = GetEnv()
	}
	if a.Port <= 0 {
		a.Port = 8080
	}
	if a.NodeID == "" {
		a.NodeID = GetNodeID("NODE_ID", "POD_NAME")
	}
}

// ==================== LogConfig 默认值 ====================

// ApplyDefaults 应用日志配置默认值
func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "json"
	}
	if l.Level == "" {
		l.Level = "info"
	}
	if l.MaxAgeDays <= 0 {
		l.MaxAgeDays = 7
	}
}

// ==================== KafkaConfig 默认值 ====================

// ApplyDefaults 应用 Kafka 配置默认值
func (k *KafkaConfig) ApplyDefaults() {
	if k.RequiredAcks == "" {
		k.RequiredAcks = "all"
	}
	if k.MaxAttempts <= 0 {
		k.MaxAttempts = 3
	}
}

// ==================== FaultConfig 默认值 ====================

// ApplyDefaults 应用故障配置默认值
func (f *FaultConfig) ApplyDefaults() {
	if f.JournalTopic == "" {
		f.JournalTopic = "service-faults"
	}
	if f.JournalPrefix == "" {
		f.JournalPrefix = "fault:"
	}
	if f.JournalTTL <= 0 {
		f.JournalTTL = Duration(7 * 24 * 3600)
	}
}

// ==================== HeaderConfig 默认值 ====================

// ApplyDefaults 应用请求头配置默认值
func (h *HeaderConfig) ApplyDefaults() {
	if h.SkipPrefixes == nil {
		h.SkipPrefixes = []string{"/health", "/metrics"}
	}
}

// ==================== TracingConfig 默认值 ====================

// ApplyDefaults 应用 Tracing 配置默认值
func (t *TracingConfig) ApplyDefaults() {
	if t.Exporter == "" {
		t.Exporter = "stdout"
	}
	if t.SampleRatio <= 0 {
		t.SampleRatio = 1.0
	}
}

// ==================== ServiceConfig 默认值 ====================

// ApplyDefaults 依次应用各段默认值
func (c *ServiceConfig) ApplyDefaults() {
	c.App.ApplyDefaults()
	c.Log.ApplyDefaults()
	c.Kafka.ApplyDefaults()
	c.Fault.ApplyDefaults()
	c.Headers.ApplyDefaults()
	c.Tracing.ApplyDefaults()
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = c.App.Name
	}
}
