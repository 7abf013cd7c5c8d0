package main

import (
	"medirisk-service/internal/app/config"
	"medirisk-service/internal/pkg/constvars"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentStorage(t *testing.T) {
	newBootstrap := func(driver string) *config.Bootstrap {
		return &config.Bootstrap{
			DriverConfig: &config.DriverConfig{
				Store: config.Store{
					Driver:     driver,
					FilePath:   filepath.Join(t.TempDir(), "patients.json"),
					ObjectName: "patients.json",
					RedisKey:   "medirisk:patients",
				},
				Minio: config.Minio{BucketName: "medirisk"},
			},
		}
	}

	t.Run("Known Drivers", func(t *testing.T) {
		for _, driver := range []string{constvars.StoreDriverFile, constvars.StoreDriverRedis, constvars.StoreDriverMinio} {
			documentStorage, err := newDocumentStorage(newBootstrap(driver))
			require.NoError(t, err, driver)
			assert.Equal(t, driver, documentStorage.Driver())
		}
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		documentStorage, err := newDocumentStorage(newBootstrap("dynamo"))
		assert.Nil(t, documentStorage)
		assert.ErrorContains(t, err, `unknown STORE_DRIVER "dynamo"`)
	})
}
