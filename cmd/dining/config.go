package main

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// fileConfig YAML 配置文件的结构
//
// 所有字段都可省略，省略的字段取默认值；
// 命令行显式给出的参数优先于配置文件。
type fileConfig struct {
	// Seats 座位数
	Seats int `koanf:"seats"`
	// Courses 每人进餐轮数，0 表示一直运行
	Courses int `koanf:"courses"`
	// MinDelay/MaxDelay 思考与进餐时长区间（以 Unit 为单位）
	MinDelay int `koanf:"min_delay"`
	MaxDelay int `koanf:"max_delay"`
	// Unit 时长单位，time.ParseDuration 格式，如 "100ms"
	Unit string `koanf:"unit"`
	// Seed 随机种子，0 表示按当前时间播种
	Seed int64 `koanf:"seed"`
}

// defaultFileConfig 默认配置：5 个哲学家各吃 3 轮，时长 2..5 个 100ms
func defaultFileConfig() fileConfig {
	return fileConfig{
		Seats:    5,
		Courses:  3,
		MinDelay: 2,
		MaxDelay: 5,
		Unit:     "100ms",
	}
}

// loadFileConfig 读取 YAML 配置，文件里省略的字段保持默认值
func loadFileConfig(path string) (fileConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultFileConfig(), "koanf"), nil); err != nil {
		return fileConfig{}, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fileConfig{}, fmt.Errorf("load config file %s: %w", path, err)
	}

	var out fileConfig
	if err := k.Unmarshal("", &out); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return out, nil
}
