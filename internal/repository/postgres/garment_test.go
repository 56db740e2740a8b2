package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGarmentRepository(t *testing.T) {
	db := &Connection{}
	repo := NewGarmentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewGarmentImageRepository(t *testing.T) {
	db := &Connection{}
	repo := NewGarmentImageRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewTagRepository(t *testing.T) {
	db := &Connection{}
	repo := NewTagRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewTransactor(t *testing.T) {
	db := &Connection{}
	tr := NewTransactor(db)

	assert.NotNil(t, tr)
	assert.Equal(t, db, tr.db)
}
