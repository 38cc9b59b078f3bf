package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wilenwang/just_play/Deck/internal/protocol"
)

// OutputPretty 使用 lipgloss 渲染的终端输出
const OutputPretty = "pretty"

// Config 命令行配置
type Config struct {
	Players int       `mapstructure:"players"`  // 默认发牌人数
	Seed    int64     `mapstructure:"seed"`     // 随机种子，0 表示按时间
	Output  string    `mapstructure:"output"`   // text / json / yaml / pretty
	PerLine int       `mapstructure:"per_line"` // pretty 输出每行牌数
	History int       `mapstructure:"history"`  // TUI 保留的操作记录条数
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text / json / pretty
}

// LoadConfig 依次从默认值、配置文件、环境变量 (DECK_*) 和命令行参数加载配置
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("players", 4)
	v.SetDefault("seed", 0)
	v.SetDefault("output", "text")
	v.SetDefault("per_line", 13)
	v.SetDefault("history", 50)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	v.SetEnvPrefix("DECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("绑定命令行参数失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	if c.Players <= 0 {
		return fmt.Errorf("players 必须大于 0, 当前为 %d", c.Players)
	}
	if c.PerLine < 0 {
		return errors.New("per_line 不能为负数")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("未知的日志级别 %q (可选 debug, info, warn, error)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "pretty":
	default:
		return fmt.Errorf("未知的日志格式 %q (可选 text, json, pretty)", c.Log.Format)
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == OutputPretty {
		return nil
	}
	if _, err := protocol.ParseFormat(c.Output); err != nil {
		return err
	}
	return nil
}

// SetupLogger 按配置创建日志记录器，输出到 w（通常是 stderr）
func SetupLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "pretty":
		// charmbracelet/log 的级别数值与 slog 一致
		handler = clog.NewWithOptions(w, clog.Options{
			Level:           clog.Level(level),
			Prefix:          "deck",
			ReportTimestamp: true,
		})
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
