package bootstrap

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Goden-Gun/service-lib/pkg/config"
)

// 资源属性键
const (
	AttrCloudRoleName = attribute.Key("cloud.role.name")
	AttrChannelID     = attribute.Key("channel.id")
)

// ShutdownFunc 关闭函数类型
type ShutdownFunc func(context.Context) error

// InitTracing 初始化 OpenTelemetry 分布式追踪
// 返回 shutdown 函数用于优雅关闭
func InitTracing(ctx context.Context, cfg config.TracingConfig) (ShutdownFunc, error) {
	exporterName := cfg.Exporter
	if exporterName == "" || exporterName == "disabled" {
		return func(context.Context) error { return nil }, nil
	}

	var (
		exporter sdktrace.SpanExporter
		err      error
	)

	switch exporterName {
	case "stdout":
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "otlp", "otlp-grpc":
		clientOpts := []otlptracegrpc.Option{}
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracegrpc.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
		}
		exporter, err = otlptracegrpc.New(ctx, clientOpts...)
	default:
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, err
	}

	res, err := TracingResource(cfg)
	if err != nil {
		return nil, err
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider.Shutdown, nil
}

// TracingResource 构造服务资源：service.name、cloud role、channel id 与自定义标签
func TracingResource(cfg config.TracingConfig) (*resource.Resource, error) {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "unknown-service"
	}
	roleName := cfg.CloudRoleName
	if roleName == "" {
		roleName = serviceName
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceName(serviceName),
		AttrCloudRoleName.String(roleName),
	}
	if cfg.ChannelID != "" {
		attrs = append(attrs, AttrChannelID.String(cfg.ChannelID))
	}
	for k, v := range cfg.ResourceTags {
		attrs = append(attrs, attribute.String(k, v))
	}

	// 不带 schema URL，避免与 resource.Default() 的 semconv 版本冲突
	return resource.Merge(resource.Default(), resource.NewSchemaless(attrs...))
}
