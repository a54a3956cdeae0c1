package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableExists(t *testing.T) {
	desc := personDescriptor()
	assert.True(t, TableExists(desc, NewTableSet([]string{"events", "people"})))
	assert.False(t, TableExists(desc, NewTableSet([]string{"events"})))
	assert.False(t, TableExists(desc, nil))
}

func TestMaterializer_Apply(t *testing.T) {
	boom := errors.New("relation already exists")

	tests := []struct {
		name      string
		existing  []string
		overwrite bool
		createErr error
		dropErr   error
		status    Status
		calls     []string
		op        string
	}{
		{
			name:   "absent table is created without drop",
			status: StatusCreated,
			calls:  []string{"create:people"},
		},
		{
			name:      "absent table ignores overwrite flag",
			overwrite: true,
			status:    StatusCreated,
			calls:     []string{"create:people"},
		},
		{
			name:     "existing table without confirmation is skipped",
			existing: []string{"people"},
			status:   StatusSkipped,
		},
		{
			name:      "existing table with confirmation is recreated",
			existing:  []string{"people"},
			overwrite: true,
			status:    StatusCreated,
			calls:     []string{"drop:people", "create:people"},
		},
		{
			name:      "create failure",
			createErr: boom,
			status:    StatusFailed,
			calls:     []string{"create:people"},
			op:        "create",
		},
		{
			name:      "drop failure stops before create",
			existing:  []string{"people"},
			overwrite: true,
			dropErr:   boom,
			status:    StatusFailed,
			calls:     []string{"drop:people"},
			op:        "drop",
		},
		{
			name:      "create failure after drop",
			existing:  []string{"people"},
			overwrite: true,
			createErr: boom,
			status:    StatusFailed,
			calls:     []string{"drop:people", "create:people"},
			op:        "create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{createErr: tt.createErr, dropErr: tt.dropErr}
			m := NewMaterializer(backend)

			result := m.Apply(context.Background(), personDescriptor(), NewTableSet(tt.existing), tt.overwrite)

			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, "people", result.Table)
			assert.Equal(t, tt.calls, backend.calls)

			if tt.op == "" {
				assert.NoError(t, result.Err)
				return
			}
			var be *BackendError
			require.ErrorAs(t, result.Err, &be)
			assert.Equal(t, tt.op, be.Op)
			assert.Equal(t, "people", be.Table)
			assert.ErrorIs(t, result.Err, boom)
		})
	}
}

func TestMaterializer_Run(t *testing.T) {
	t.Run("confirm is not asked for a new table", func(t *testing.T) {
		backend := &fakeBackend{tables: []string{"events"}}
		asked := false

		result := NewMaterializer(backend).Run(context.Background(), personDescriptor(), func(string) bool {
			asked = true
			return true
		})

		assert.Equal(t, StatusCreated, result.Status)
		assert.False(t, asked)
		assert.Equal(t, []string{"list:default", "create:people"}, backend.calls)
	})

	t.Run("declined overwrite", func(t *testing.T) {
		backend := &fakeBackend{tables: []string{"people"}}
		var asked string

		result := NewMaterializer(backend).Run(context.Background(), personDescriptor(), func(table string) bool {
			asked = table
			return false
		})

		assert.Equal(t, StatusSkipped, result.Status)
		assert.Equal(t, "people", asked)
		assert.Equal(t, []string{"list:default"}, backend.calls)
	})

	t.Run("list failure", func(t *testing.T) {
		backend := &fakeBackend{listErr: errors.New("connection refused")}

		result := NewMaterializer(backend).Run(context.Background(), personDescriptor(), nil)

		assert.Equal(t, StatusFailed, result.Status)
		var be *BackendError
		require.ErrorAs(t, result.Err, &be)
		assert.Equal(t, "list", be.Op)
		assert.Equal(t, `list table "people" failed: connection refused`, be.Error())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "created", StatusCreated.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
