package config

import (
	"os"
	"strings"
)

// GetSecretOrEnv 从 Docker Secret 文件或环境变量读取敏感信息
// 优先级: {NAME}_FILE 指定的文件 > {NAME} 环境变量 > 默认值
//
// 示例:
//
//	password := GetSecretOrEnv("KAFKA_PASSWORD", "")
//	// KAFKA_PASSWORD_FILE=/run/secrets/kafka-password 存在时读取文件内容
func GetSecretOrEnv(name string, defaultValue string) string {
	if filePath := os.Getenv(name + "_FILE"); filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

// SecretDefinition 描述一个注入到配置字段的 Secret
type SecretDefinition struct {
	Name     string  // Secret 名称 (如 REDIS_PASSWORD)
	Target   *string // 目标字段指针
	Default  string  // 默认值
	Required bool    // 是否必需
}

// SecretNotFoundError 必需的 Secret 在文件、环境变量、配置文件中都不存在
type SecretNotFoundError struct {
	Name string
}

func (e *SecretNotFoundError) Error() string {
	return "required secret not found: " + e.Name
}

// LoadConfigWithSecrets 先加载 YAML 配置, 再按 secrets 注入敏感字段.
// Secret 为空时保留配置文件中的值.
func LoadConfigWithSecrets(cfg interface{}, secrets []SecretDefinition, opts ...LoadOptions) error {
	if err := LoadConfig(cfg, opts...); err != nil {
		return err
	}
	return injectSecrets(secrets)
}

func injectSecrets(secrets []SecretDefinition) error {
	for _, s := range secrets {
		value := GetSecretOrEnv(s.Name, s.Default)
		if value == "" && s.Target != nil {
			value = *s.Target
		}
		if s.Required && value == "" {
			return &SecretNotFoundError{Name: s.Name}
		}
		if s.Target != nil {
			*s.Target = value
		}
	}
	return nil
}
