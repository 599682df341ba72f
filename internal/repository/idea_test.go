package repository

import (
	"testing"
	"time"

	"github.com/qaspilab/qaspilab/internal/database"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdeaRepository(t *testing.T) {
	t.Run("nil pool returns error", func(t *testing.T) {
		repo, err := NewIdeaRepository(nil)
		assert.Nil(t, repo)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database pool is required")
	})
}

func TestIdeaFilter(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    IdeaFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "empty filter",
			filter:    IdeaFilter{},
			wantWhere: "SELECT COUNT(*) FROM ideas",
		},
		{
			name:      "status only",
			filter:    IdeaFilter{Status: model.DeliveryNotifyFailed},
			wantWhere: "SELECT COUNT(*) FROM ideas WHERE status = $1",
			wantArgs:  []any{"notify_failed"},
		},
		{
			name:      "all fields",
			filter:    IdeaFilter{Status: model.DeliveryNew, Surface: "modal", Since: since},
			wantWhere: "SELECT COUNT(*) FROM ideas WHERE status = $1 AND surface = $2 AND created_at >= $3",
			wantArgs:  []any{"new", "modal", since},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.filter.apply(database.QB.Select("COUNT(*)").From("ideas")).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantWhere, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
