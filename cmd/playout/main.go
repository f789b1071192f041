package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pipelined.dev/playout"
	"pipelined.dev/playout/generate"
	"pipelined.dev/playout/log"
	"pipelined.dev/playout/metric"
	"pipelined.dev/playout/mp3"
	"pipelined.dev/playout/portaudio"
	"pipelined.dev/playout/signal"
	"pipelined.dev/playout/wav"
)

const (
	successExitCode = 0
	errorExitCode   = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("playout", flag.ExitOnError)
	configPath := fs.String("config", "", "path to yaml config")
	duration := fs.Duration("duration", 5*time.Second, "playback duration")
	if err := fs.Parse(args); err != nil {
		fs.PrintDefaults()
		return errorExitCode
	}

	logger := log.GetLogger()
	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error(err)
		return errorExitCode
	}

	var engine playout.Engine
	switch cfg.Tone.Shape {
	case "noise":
		engine = generate.NewNoise(cfg.Tone.Amplitude, cfg.NumChannels, cfg.FramesPerBlock)
	default:
		engine = generate.NewSine(cfg.Tone.Freq, cfg.Tone.Amplitude, cfg.SampleRate, cfg.NumChannels, cfg.FramesPerBlock)
	}

	sinks := make([]playout.BlockSink, 0, 2)
	if cfg.Capture.Wav != "" {
		sink, err := wav.NewSink(cfg.Capture.Wav, cfg.SampleRate, cfg.NumChannels, signal.BitDepth16)
		if err != nil {
			logger.Error(err)
			return errorExitCode
		}
		sinks = append(sinks, sink)
	}
	if cfg.Capture.Mp3 != "" {
		sink, err := mp3.NewSink(cfg.Capture.Mp3, cfg.SampleRate, cfg.NumChannels, cfg.Capture.Mp3Bitrate, cfg.Capture.Mp3Quality)
		if err != nil {
			logger.Error(err)
			return errorExitCode
		}
		sinks = append(sinks, sink)
	}

	host := portaudio.NewHost(cfg.SampleRate, cfg.NumChannels, cfg.BufferFrames)
	session, err := playout.New(
		playout.Tap(engine, sinks...),
		host,
		playout.WithLogger(logger),
		playout.WithChannels(cfg.NumChannels),
		playout.WithBlock(cfg.FramesPerBlock, cfg.BlocksPerQueue),
		playout.WithSampleRate(cfg.SampleRate),
	)
	if err != nil {
		logger.Error(err)
		return errorExitCode
	}

	if err := session.Run(); err != nil {
		logger.Error(err)
		return errorExitCode
	}
	time.Sleep(*duration)
	if err := session.Stop(); err != nil {
		logger.Error(err)
		return errorExitCode
	}
	for _, sink := range sinks {
		if err := sink.Flush(); err != nil {
			logger.Error(err)
			return errorExitCode
		}
	}

	for counter, value := range metric.Get(session.UID()) {
		fmt.Printf("%s: %s\n", counter, value)
	}
	return successExitCode
}
