// Package config loads marquee settings from a TOML file and MARQUEE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/phanxgames/marquee"
)

const (
	configName = "marquee"
	configType = "toml"
	envPrefix  = "MARQUEE"
	fileMode   = 0o644
	dirMode    = 0o755
)

// Keys.
const (
	keyItemHeight         = "carousel.item_height"
	keyVelocityThreshold  = "carousel.velocity_threshold"
	keyParallaxDamping    = "carousel.parallax_damping"
	keyMomentumMultiplier = "carousel.momentum_multiplier"
	keySampleInterval     = "carousel.sample_interval"
	keyVelocityWindow     = "carousel.velocity_window"
	keySettleDuration     = "carousel.settle_duration"
	keyCoastDuration      = "carousel.coast_duration"
	keyDragDeadZone       = "carousel.drag_dead_zone"

	keyTitle     = "window.title"
	keyWidth     = "window.width"
	keyHeight    = "window.height"
	keyShowFPS   = "window.show_fps"
	keyResizable = "window.resizable"
	keyDebug     = "window.debug"

	keyAudioEnabled = "audio.enabled"
	keyAudioVolume  = "audio.volume"

	keyScreenshotDir = "stage.screenshot_dir"
)

// ErrExists is returned by WriteDefault when the target file is present.
var ErrExists = errors.New("config file already exists")

// File is the resolved configuration.
type File struct {
	Carousel      marquee.Config
	Window        marquee.RunConfig
	Audio         Audio
	ScreenshotDir string
}

// Audio holds the cue player settings.
type Audio struct {
	Enabled bool
	Volume  float64
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() File {
	return File{
		Carousel: marquee.DefaultConfig(),
		Window:   marquee.RunConfig{Title: "Marquee", Width: 720, Height: 900, Resizable: true},
		Audio:    Audio{Enabled: true, Volume: 0.6},

		ScreenshotDir: "screenshots",
	}
}

// Load reads path, or marquee.toml from the working directory and the user
// config directory when path is empty. A missing default file is not an
// error; a missing explicit path is. v may be nil.
func Load(v *viper.Viper, path string) (File, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "marquee"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return File{}, fmt.Errorf("read config file: %w", err)
		}
	}

	f := Default()
	f.Carousel.ItemHeight = v.GetFloat64(keyItemHeight)
	f.Carousel.VelocityThreshold = v.GetFloat64(keyVelocityThreshold)
	f.Carousel.ParallaxDamping = v.GetFloat64(keyParallaxDamping)
	f.Carousel.MomentumMultiplier = v.GetFloat64(keyMomentumMultiplier)
	f.Carousel.SampleInterval = v.GetDuration(keySampleInterval)
	f.Carousel.VelocityWindow = v.GetDuration(keyVelocityWindow)
	f.Carousel.SettleDuration = seconds(v.GetDuration(keySettleDuration))
	f.Carousel.CoastDuration = seconds(v.GetDuration(keyCoastDuration))
	f.Carousel.DragDeadZone = v.GetFloat64(keyDragDeadZone)

	f.Window.Title = v.GetString(keyTitle)
	f.Window.Width = v.GetInt(keyWidth)
	f.Window.Height = v.GetInt(keyHeight)
	f.Window.ShowFPS = v.GetBool(keyShowFPS)
	f.Window.Resizable = v.GetBool(keyResizable)
	f.Window.Debug = v.GetBool(keyDebug)

	f.Audio.Enabled = v.GetBool(keyAudioEnabled)
	f.Audio.Volume = v.GetFloat64(keyAudioVolume)

	f.ScreenshotDir = v.GetString(keyScreenshotDir)

	// ItemCount comes from the catalogue; validate with the default count.
	if err := f.Carousel.Validate(); err != nil {
		return File{}, fmt.Errorf("load config: %w", err)
	}
	return f, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(keyItemHeight, d.Carousel.ItemHeight)
	v.SetDefault(keyVelocityThreshold, d.Carousel.VelocityThreshold)
	v.SetDefault(keyParallaxDamping, d.Carousel.ParallaxDamping)
	v.SetDefault(keyMomentumMultiplier, d.Carousel.MomentumMultiplier)
	v.SetDefault(keySampleInterval, d.Carousel.SampleInterval)
	v.SetDefault(keyVelocityWindow, d.Carousel.VelocityWindow)
	v.SetDefault(keySettleDuration, duration(d.Carousel.SettleDuration))
	v.SetDefault(keyCoastDuration, duration(d.Carousel.CoastDuration))
	v.SetDefault(keyDragDeadZone, d.Carousel.DragDeadZone)

	v.SetDefault(keyTitle, d.Window.Title)
	v.SetDefault(keyWidth, d.Window.Width)
	v.SetDefault(keyHeight, d.Window.Height)
	v.SetDefault(keyShowFPS, d.Window.ShowFPS)
	v.SetDefault(keyResizable, d.Window.Resizable)
	v.SetDefault(keyDebug, d.Window.Debug)

	v.SetDefault(keyAudioEnabled, d.Audio.Enabled)
	v.SetDefault(keyAudioVolume, d.Audio.Volume)

	v.SetDefault(keyScreenshotDir, d.ScreenshotDir)
}

// fileSchema is the on-disk layout written by WriteDefault. Durations are
// strings so the file stays hand-editable.
type fileSchema struct {
	Carousel carouselSchema `toml:"carousel"`
	Window   windowSchema   `toml:"window"`
	Audio    audioSchema    `toml:"audio"`
	Stage    stageSchema    `toml:"stage"`
}

type carouselSchema struct {
	ItemHeight         float64 `toml:"item_height"`
	VelocityThreshold  float64 `toml:"velocity_threshold"`
	ParallaxDamping    float64 `toml:"parallax_damping"`
	MomentumMultiplier float64 `toml:"momentum_multiplier"`
	SampleInterval     string  `toml:"sample_interval"`
	VelocityWindow     string  `toml:"velocity_window"`
	SettleDuration     string  `toml:"settle_duration"`
	CoastDuration      string  `toml:"coast_duration"`
	DragDeadZone       float64 `toml:"drag_dead_zone"`
}

type windowSchema struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	ShowFPS   bool   `toml:"show_fps"`
	Resizable bool   `toml:"resizable"`
	Debug     bool   `toml:"debug"`
}

type audioSchema struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type stageSchema struct {
	ScreenshotDir string `toml:"screenshot_dir"`
}

func toSchema(f File) fileSchema {
	c := f.Carousel
	return fileSchema{
		Carousel: carouselSchema{
			ItemHeight:         c.ItemHeight,
			VelocityThreshold:  c.VelocityThreshold,
			ParallaxDamping:    c.ParallaxDamping,
			MomentumMultiplier: c.MomentumMultiplier,
			SampleInterval:     c.SampleInterval.String(),
			VelocityWindow:     c.VelocityWindow.String(),
			SettleDuration:     duration(c.SettleDuration).String(),
			CoastDuration:      duration(c.CoastDuration).String(),
			DragDeadZone:       c.DragDeadZone,
		},
		Window: windowSchema{
			Title:     f.Window.Title,
			Width:     f.Window.Width,
			Height:    f.Window.Height,
			ShowFPS:   f.Window.ShowFPS,
			Resizable: f.Window.Resizable,
			Debug:     f.Window.Debug,
		},
		Audio: audioSchema{Enabled: f.Audio.Enabled, Volume: f.Audio.Volume},
		Stage: stageSchema{ScreenshotDir: f.ScreenshotDir},
	}
}

// Encode renders f as TOML.
func Encode(f File) ([]byte, error) {
	data, err := toml.Marshal(toSchema(f))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path. It refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	data, err := Encode(Default())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return fmt.Errorf("create config file: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return fmt.Errorf("write config file: %w", err)
	}
	return out.Close()
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

func duration(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second)).Round(time.Millisecond)
}
