package config_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sedu-app/sedu/internal/config"
)

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		files     fstest.MapFS
		path      string
		expConfig config.Config
		expErr    bool
	}{
		"a missing file should return an empty config": {
			files:     fstest.MapFS{},
			path:      "config.yaml",
			expConfig: config.Config{},
		},
		"a full config file should be loaded": {
			files: fstest.MapFS{
				"config.yaml": &fstest.MapFile{Data: []byte(`
server_url: "https://sedu.example.com"
poll_interval_seconds: 5
reviewer: "ana"
`)},
			},
			path: "config.yaml",
			expConfig: config.Config{
				ServerURL:    "https://sedu.example.com",
				PollInterval: 5 * time.Second,
				Reviewer:     "ana",
			},
		},
		"a partial config file should leave the rest unset": {
			files: fstest.MapFS{
				"config.yaml": &fstest.MapFile{Data: []byte(`reviewer: "ana"`)},
			},
			path: "config.yaml",
			expConfig: config.Config{
				Reviewer: "ana",
			},
		},
		"invalid YAML should fail": {
			files: fstest.MapFS{
				"config.yaml": &fstest.MapFile{Data: []byte(`server_url: [`)},
			},
			path:   "config.yaml",
			expErr: true,
		},
		"a negative poll interval should fail": {
			files: fstest.MapFS{
				"config.yaml": &fstest.MapFile{Data: []byte(`poll_interval_seconds: -1`)},
			},
			path:   "config.yaml",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			cfg, err := config.Load(test.files, test.path)

			if test.expErr {
				require.Error(err)
			} else {
				require.NoError(err)
				assert.Equal(test.expConfig, cfg)
			}
		})
	}
}
