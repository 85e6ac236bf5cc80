// Package config provides common configuration types and utilities
// for services that mount the fault boundary.
//
// Usage:
//
//	import "github.com/Goden-Gun/service-lib/pkg/config"
//
//	type MyConfig struct {
//	    App   config.AppConfig   `yaml:"app" mapstructure:"app"`
//	    Fault config.FaultConfig `yaml:"fault" mapstructure:"fault"`
//	    Log   config.LogConfig   `yaml:"log" mapstructure:"log"`
//	    // ... service-specific configs
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        return nil, err
//	    }
//	    cfg.App.Env = config.GetEnv()
//	    return cfg, nil
//	}
//
// Services without extra sections can call LoadServiceConfig directly.
package config
