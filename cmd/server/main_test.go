package main

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ClosesStoragesWhenWiringFails(t *testing.T) {
	conn, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	dbMock.ExpectClose()

	log := logger.Nop()
	storages, err := store.NewStorages(context.Background(), &store.DB{DB: conn}, config.Storage{}, log)
	require.NoError(t, err)

	cfg := &config.StructuredConfig{App: config.App{AuthMode: "basic", Version: "test"}}

	err = serve(storages, cfg, log)
	assert.ErrorIs(t, err, service.ErrUnknownAuthMode)
	assert.NoError(t, dbMock.ExpectationsWereMet(), "storages must be closed before serve returns")
}
