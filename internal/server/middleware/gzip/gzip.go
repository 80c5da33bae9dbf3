// Package gzip compresses eligible responses before the pipeline flushes
// them to the network.
package gzip

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/s-turchinskiy/gzipresponse/internal/pipeline"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultBufferSize = 8 * 1024
	defaultMinLength  = 1024
)

type Config struct {
	Level      int // gzip level, 0 means gzip.DefaultCompression
	BufferSize int // body producer buffer, 0 means 8KB
	MinLength  int // smallest declared Content-Length worth compressing, 0 means 1024
}

type Middleware struct {
	log        *zap.SugaredLogger
	level      int
	bufferSize int
	minLength  int
}

func New(log *zap.SugaredLogger) *Middleware {
	return NewWithConfig(log, Config{})
}

func NewWithConfig(log *zap.SugaredLogger, cfg Config) *Middleware {
	if cfg.Level == 0 {
		cfg.Level = gzip.DefaultCompression
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = defaultMinLength
	}

	return &Middleware{
		log:        log,
		level:      cfg.Level,
		bufferSize: cfg.BufferSize,
		minLength:  cfg.MinLength,
	}
}

// Process decides whether resp should be compressed and, if so, mutates it
// in place: Content-Encoding is set to gzip and the body producer is wrapped
// so its bytes are compressed on the way to the real sink. The original
// producer is captured by closure and invoked exactly once, at flush time.
func (m *Middleware) Process(req *pipeline.Request, resp *pipeline.Response) error {

	eligible, err := m.shouldCompress(req, resp)
	if err != nil {
		return err
	}
	if !eligible {
		return nil
	}

	resp.Headers.Set("Content-Encoding", "gzip")

	contents := resp.Contents
	resp.Contents = func(dst io.Writer) error {

		if err := m.compress(contents, dst); err != nil {
			m.log.Errorw("unable to gzip response", "error", err.Error())
			return err
		}
		return nil
	}

	return nil
}

// compress runs the original body producer against a buffered compressing
// writer. Both wrappers are released on every exit path: the buffer is
// flushed and the gzip footer written even when the producer fails.
func (m *Middleware) compress(contents func(io.Writer) error, dst io.Writer) error {

	zw, err := NewWriterLevel(dst, m.level)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(zw, m.bufferSize)

	err = contents(bw)
	err = multierr.Append(err, bw.Flush())
	return multierr.Append(err, zw.Close())
}
