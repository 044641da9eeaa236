package migrate

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/teams/migrations"
)

func TestNew_Validation(t *testing.T) {
	_, err := New("", nil)
	assert.Error(t, err, "empty dsn must be rejected")

	_, err = NewWithFS("postgres://localhost/teams", nil, nil)
	assert.Error(t, err, "nil filesystem must be rejected")

	runner, err := NewWithFS("postgres://localhost/teams", fstest.MapFS{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, runner.log, "default logger should be set")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations.FS, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "-- +goose Down")
	assert.Contains(t, string(body), "team_statuses_user_id_fkey")
}
