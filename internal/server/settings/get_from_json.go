package settings

import (
	configutils "github.com/s-turchinskiy/gzipresponse/internal/common/configutil"
)

type JSONConfig struct {
	Address        string `json:"address,omitempty"`
	GzipLevel      int    `json:"gzip_level,omitempty"`
	GzipBufferSize int    `json:"gzip_buffer_size,omitempty"`
	GzipMinLength  int    `json:"gzip_min_length,omitempty"`
}

func loadConfigFromJSON(config *ProgramSettings, filePath string) error {

	var jsonConfig JSONConfig
	if err := configutils.LoadJSONConfig(filePath, &jsonConfig); err != nil {
		return err
	}

	if jsonConfig.Address != "" {
		if err := config.Address.Set(jsonConfig.Address); err != nil {
			return err
		}
	}

	if jsonConfig.GzipLevel != 0 {
		config.GzipLevel = jsonConfig.GzipLevel
	}

	if jsonConfig.GzipBufferSize != 0 {
		config.GzipBufferSize = jsonConfig.GzipBufferSize
	}

	if jsonConfig.GzipMinLength != 0 {
		config.GzipMinLength = jsonConfig.GzipMinLength
	}

	return nil
}
