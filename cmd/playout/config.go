package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	SampleRate     int           `yaml:"sample_rate"`
	NumChannels    int           `yaml:"channels"`
	FramesPerBlock int           `yaml:"frames_per_block"`
	BlocksPerQueue int           `yaml:"blocks_per_queue"`
	BufferFrames   int           `yaml:"buffer_frames"`
	Tone           toneConfig    `yaml:"tone"`
	Capture        captureConfig `yaml:"capture"`
}

type toneConfig struct {
	Shape     string  `yaml:"shape"` // sine or noise
	Freq      float64 `yaml:"freq"`
	Amplitude float64 `yaml:"amplitude"`
}

type captureConfig struct {
	Wav        string `yaml:"wav"`
	Mp3        string `yaml:"mp3"`
	Mp3Bitrate int    `yaml:"mp3_bitrate"`
	Mp3Quality int    `yaml:"mp3_quality"`
}

func defaultConfig() config {
	return config{
		SampleRate:     44100,
		NumChannels:    2,
		FramesPerBlock: 512,
		BlocksPerQueue: 4,
		BufferFrames:   512,
		Tone: toneConfig{
			Shape:     "sine",
			Freq:      440,
			Amplitude: 0.5,
		},
		Capture: captureConfig{
			Mp3Bitrate: 192,
			Mp3Quality: 2,
		},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.Tone.Shape {
	case "sine", "noise":
	default:
		return fmt.Errorf("unknown tone shape: %q", c.Tone.Shape)
	}
	return nil
}
