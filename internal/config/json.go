package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Engine struct {
		MaxParallelItems int      `json:"max_parallel_items"`
		Timeout          Duration `json:"timeout"`
	} `json:"engine,omitempty"`

	CodeLists struct {
		Dir string `json:"dir"`
	} `json:"code_lists,omitempty"`

	Input struct {
		ReportPath string `json:"report_path"`
		OutputPath string `json:"output_path"`
	} `json:"input,omitempty"`

	Metrics struct {
		TextfilePath string `json:"textfile_path"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Engine: Engine{
			MaxParallelItems: jsonCfg.Engine.MaxParallelItems,
			Timeout:          time.Duration(jsonCfg.Engine.Timeout),
		},
		CodeLists: CodeLists{
			Dir: jsonCfg.CodeLists.Dir,
		},
		Input: Input{
			ReportPath: jsonCfg.Input.ReportPath,
			OutputPath: jsonCfg.Input.OutputPath,
		},
		Metrics: Metrics{
			TextfilePath: jsonCfg.Metrics.TextfilePath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
