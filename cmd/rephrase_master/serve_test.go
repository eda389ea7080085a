package main

import (
	"context"
	"io"
	"testing"

	"github.com/jonathan/rephrase-master/internal/config"
	"github.com/jonathan/rephrase-master/internal/history"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	free := initialState(false).Snapshot()
	assert.False(t, free.IsPro)
	assert.True(t, free.ShareTagsEnabled)
	assert.True(t, free.LpLinkEnabled)
	assert.True(t, free.SaveHistoryEnabled)

	pro := initialState(true).Snapshot()
	assert.True(t, pro.IsPro)
	assert.Equal(t, -1, pro.Remaining())
}

func TestOpenHistoryStore_MemoryWithoutDatabaseURL(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, closeStore, err := openHistoryStore(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &history.MemoryStore{}, store)
}
