package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
)

func TestParseFramework(t *testing.T) {
	tests := []struct {
		input string
		want  Framework
		ok    bool
	}{
		{"FastAPI", FastAPI, true},
		{"fastapi", FastAPI, true},
		{"flask-restx", FlaskRestx, true},
		{" Django-Rest ", DjangoRest, true},
		{"rails", Framework("rails"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFramework(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrValidation)
			assert.Contains(t, err.Error(), "Flask-Restx, FastAPI, Django-Rest")
		})
	}
}

func TestParseORMAndDatabase(t *testing.T) {
	orm, err := ParseORM("tortoiseorm")
	require.NoError(t, err)
	assert.Equal(t, TortoiseORM, orm)

	db, err := ParseDatabase("postgresql")
	require.NoError(t, err)
	assert.Equal(t, PostgreSQL, db)

	_, err = ParseDatabase("oracle")
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestCompatibility(t *testing.T) {
	assert.Equal(t, []Framework{FlaskRestx, FastAPI, DjangoRest}, Frameworks())
	assert.Equal(t, []ORM{SQLAlchemy, Peewee}, CompatibleORMs(FlaskRestx))
	assert.Equal(t, []ORM{DjangoORM}, CompatibleORMs(DjangoRest))
	assert.Nil(t, CompatibleORMs("Rails"))

	ok, reason := ValidateCombination(FastAPI, Peewee)
	assert.False(t, ok)
	assert.Equal(t, "FastAPI is async, Peewee is sync-only", reason)

	ok, reason = ValidateCombination(FastAPI, TortoiseORM)
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, _ = ValidateCombination("Rails", SQLAlchemy)
	assert.False(t, ok)
}

func TestFrameworkInfoReturnsCopy(t *testing.T) {
	info, ok := FrameworkInfo(FastAPI)
	require.True(t, ok)
	assert.True(t, info.Async)
	info.CompatibleORMs[0] = Peewee

	assert.Equal(t, SQLAlchemy, CompatibleORMs(FastAPI)[0])
}
