// Package config implements the settings-storage external collaborator
// (spec §1, §6): a namespaced key/value Store backing model.Settings,
// loaded from a YAML file through viper using the teacher's "::" key
// delimiter so dotted setting names (e.g. "Target.build-dir") remain
// literal map keys rather than nested paths.
package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	viperlib "github.com/spf13/viper"

	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/pubsub"
)

// Defaults returns the namespaced setting defaults spec §6 names
// (System.*, Target.*, Thread.*, Breakpoint.*).
func Defaults() map[string]any {
	return map[string]any{
		model.SettingPauseOnAttach:   false,
		model.SettingSuspendTimeout:  1000,
		model.SettingStopOnNoSymbols: false,
	}
}

// Store is the viper-backed model.Settings implementation. Changes made
// through Set* are published on Changes so the TUI can reflect live
// updates (mirrors the teacher's rebuild-on-change theme pattern).
type Store struct {
	viper  *viperlib.Viper
	broker *pubsub.Broker[Change]
	path   string
}

// Change describes one setting that was written through Store.
type Change struct {
	Key   string
	Value any
}

// New creates a Store with defaults registered and no file loaded yet.
func New() *Store {
	v := viperlib.NewWithOptions(viperlib.KeyDelimiter("::"))
	for k, val := range Defaults() {
		v.SetDefault(k, val)
	}
	return &Store{viper: v, broker: pubsub.NewBroker[Change]()}
}

// Changes returns the channel of setting changes, for the TUI to tail.
func (s *Store) Changes(ctx context.Context) <-chan pubsub.Event[Change] { return s.broker.Subscribe(ctx) }

// Load reads configPath (or, if empty, searches ".zxconsolerc" in the
// current directory then "~/.config/zxconsole/config.yaml"). Missing
// files are not an error: defaults remain in effect.
func (s *Store) Load(configPath string) (usedPath string, err error) {
	if configPath != "" {
		s.viper.SetConfigFile(configPath)
	} else if _, statErr := os.Stat(".zxconsolerc"); statErr == nil {
		s.viper.SetConfigFile(".zxconsolerc")
	} else {
		home, _ := os.UserHomeDir()
		s.viper.AddConfigPath(filepath.Join(home, ".config", "zxconsole"))
		s.viper.SetConfigName("config")
		s.viper.SetConfigType("yaml")
	}

	if err := s.viper.ReadInConfig(); err != nil {
		var notFound viperlib.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			log.Debug(log.CatConfig, "no config file found, using defaults")
			return "", nil
		}
		return "", err
	}
	s.path = s.viper.ConfigFileUsed()
	log.Info(log.CatConfig, "config loaded", "path", s.path)
	return s.path, nil
}

// Path returns the config file Load used, or "" if none was found (defaults
// only). internal/watcher needs this to know what to watch for live reload.
func (s *Store) Path() string { return s.path }

// Reload re-reads the file Load last used and publishes a Change for every
// key whose value differs from before the reload, so a TUI already tailing
// Changes picks up an on-disk edit without restarting (spec's ambient
// config-reload behavior, watcher-driven).
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	before := s.viper.AllSettings()
	if err := s.viper.ReadInConfig(); err != nil {
		return err
	}
	after := s.viper.AllSettings()
	for k, v := range after {
		if old, ok := before[k]; !ok || old != v {
			s.broker.Publish(pubsub.UpdatedEvent, Change{Key: k, Value: v})
		}
	}
	log.Info(log.CatConfig, "config reloaded", "path", s.path)
	return nil
}

func (s *Store) GetBool(key string) bool     { return s.viper.GetBool(key) }
func (s *Store) GetInt(key string) int        { return s.viper.GetInt(key) }
func (s *Store) GetString(key string) string  { return s.viper.GetString(key) }

func (s *Store) SetBool(key string, value bool) {
	s.viper.Set(key, value)
	s.broker.Publish(pubsub.UpdatedEvent, Change{Key: key, Value: value})
}

func (s *Store) SetInt(key string, value int) {
	s.viper.Set(key, value)
	s.broker.Publish(pubsub.UpdatedEvent, Change{Key: key, Value: value})
}

func (s *Store) SetString(key string, value string) {
	s.viper.Set(key, value)
	s.broker.Publish(pubsub.UpdatedEvent, Change{Key: key, Value: value})
}

var _ model.Settings = (*Store)(nil)
