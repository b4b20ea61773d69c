package zap_adapter

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"marketplace/pkg/logger"
)

type ZapAdapter struct {
	logger *zap.Logger
}

type options struct {
	level       string
	service     string
	outputPaths []string
}

type Option func(*options)

// WithLevel задает минимальный уровень (debug, info, warn, error). Пустая строка - info.
func WithLevel(level string) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithService добавляет поле service в каждую запись.
func WithService(name string) Option {
	return func(o *options) {
		o.service = name
	}
}

// WithOutput переопределяет stdout, например на stderr для CLI.
func WithOutput(paths ...string) Option {
	return func(o *options) {
		o.outputPaths = paths
	}
}

func NewZapAdapter(opts ...Option) (*ZapAdapter, error) {
	o := options{outputPaths: []string{"stdout"}}
	for _, opt := range opts {
		opt(&o)
	}

	config := zap.NewProductionConfig()

	config.OutputPaths = o.outputPaths
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if o.level != "" {
		level, err := zap.ParseAtomicLevel(o.level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", o.level, err)
		}
		config.Level = level
	}

	buildOpts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}
	if o.service != "" {
		buildOpts = append(buildOpts, zap.Fields(zap.String("service", o.service)))
	}

	zapLogger, err := config.Build(buildOpts...)
	if err != nil {
		return nil, err
	}
	return New(zapLogger), nil
}

// New оборачивает готовый zap.Logger.
func New(zapLogger *zap.Logger) *ZapAdapter {
	return &ZapAdapter{logger: zapLogger}
}

// NewNop возвращает логгер, который ничего не пишет. Используется в CLI без флага --verbose.
func NewNop() *ZapAdapter {
	return New(zap.NewNop())
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	if len(fields) == 0 {
		return z
	}
	return New(z.logger.With(convertFields(fields)...))
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			zapFields = append(zapFields, zap.NamedError(f.Key, v))
		case fmt.Stringer:
			zapFields = append(zapFields, zap.Stringer(f.Key, v))
		default:
			zapFields = append(zapFields, zap.Any(f.Key, v))
		}
	}
	return zapFields
}
