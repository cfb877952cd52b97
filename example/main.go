// Package main demonstrates usage of the xgx-tagged package.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	tagged "github.com/xgx-io/xgx-tagged"
)

type FileContext struct {
	Path string `json:"path"`
}

type Config struct {
	Listen string `json:"listen"`
}

var (
	FileError = tagged.WithContext[FileContext](tagged.Define("FileError")).WithMessage(
		func(in tagged.MessageInput[FileContext, tagged.None]) string {
			return "not found: " + in.Context.Path
		},
	)

	// ConfigError follows anything, including foreign decode errors.
	ConfigError = tagged.WithOptionalCause[tagged.AnyError](tagged.Define("ConfigError")).WithMessage(
		func(in tagged.MessageInput[tagged.None, tagged.AnyError]) string {
			if in.Cause == nil {
				return "invalid configuration"
			}
			return "invalid configuration: " + in.Cause.Message
		},
	)
)

type configErr = tagged.TaggedError[tagged.None, tagged.AnyError]

func loadConfig(logger *slog.Logger, path string) tagged.Result[Config, configErr] {
	raw, err := os.ReadFile(path)
	if err != nil {
		missing, eraseErr := tagged.Erase(FileError.New(FileError.Ctx(FileContext{Path: path})))
		if eraseErr != nil {
			logger.Warn("failed to erase file error", "error", eraseErr)
			missing = tagged.Summarize(err)
		}
		return tagged.ErrFor[Config](ConfigError, ConfigError.Cause(missing))
	}

	return tagged.Try(func() (Config, error) {
		var cfg Config
		err := json.Unmarshal(raw, &cfg)
		return cfg, err
	}, func(err error) configErr {
		return ConfigError.New(ConfigError.Cause(tagged.Summarize(err)))
	})
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Direct construction
	e := FileError.New(FileError.Ctx(FileContext{Path: "/tmp/x"}))
	fmt.Println(e.Error(), e.Name, e.Context.Path)

	// Result-returning call, logged as a structured group
	res := loadConfig(logger, "/etc/xgx/missing.json")
	if failure, ok := res.Failure(); ok {
		logger.Error("config load failed", "error", failure)
		fmt.Printf("%+v\n", failure)
	}

	// Wire form
	raw, err := json.Marshal(res)
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(raw))
}
