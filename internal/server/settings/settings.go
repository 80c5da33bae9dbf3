// Package settings Настройки сервера
package settings

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	configutils "github.com/s-turchinskiy/gzipresponse/internal/common/configutil"
	"go.uber.org/zap/zapcore"
)

type NetAddress struct {
	Host string
	Port int
}

type ProgramSettings struct {
	Address        NetAddress `env:"ADDRESS"`
	GzipLevel      int        `env:"GZIP_LEVEL"`
	GzipBufferSize int        `env:"GZIP_BUFFER_SIZE"`
	GzipMinLength  int        `env:"GZIP_MIN_LENGTH"`
}

var Settings = ProgramSettings{
	Address: NetAddress{Host: "localhost", Port: 8080},
}

func Load() error {

	configFilePath := configutils.GetConfigFilePath()
	if configFilePath != "" {
		if err := loadConfigFromJSON(&Settings, configFilePath); err != nil {
			return fmt.Errorf("failed to load config from JSON: %w", err)
		}
	}

	flag.Var(&Settings.Address, "a", "Net address host:port")
	flag.IntVar(&Settings.GzipLevel, "l", Settings.GzipLevel, "gzip compression level")
	flag.IntVar(&Settings.GzipBufferSize, "b", Settings.GzipBufferSize, "response body buffer size in bytes")
	flag.IntVar(&Settings.GzipMinLength, "m", Settings.GzipMinLength, "smallest declared body size worth compressing")
	flag.String("c", "", "path to JSON config file")
	flag.String("config", "", "path to JSON config file")
	flag.Parse()

	if err := env.Parse(&Settings); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}

func (s *ProgramSettings) MarshalLogObject(encoder zapcore.ObjectEncoder) error {

	err := encoder.AddObject("Address", &s.Address)
	encoder.AddInt("GzipLevel", s.GzipLevel)
	encoder.AddInt("GzipBufferSize", s.GzipBufferSize)
	encoder.AddInt("GzipMinLength", s.GzipMinLength)
	return err
}

func (a *NetAddress) MarshalLogObject(encoder zapcore.ObjectEncoder) error {

	encoder.AddString("Host", a.Host)
	encoder.AddInt("Port", a.Port)
	return nil
}

func (a *NetAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hp := strings.Split(s, ":")
	if len(hp) != 2 {
		return errors.New("need address in a form host:port")
	}
	port, err := strconv.Atoi(hp[1])
	if err != nil {
		return err
	}
	a.Host = hp[0]
	a.Port = port
	return nil
}

func (a *NetAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
