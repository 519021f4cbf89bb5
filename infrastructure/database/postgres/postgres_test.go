package postgres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	committed   bool
	rolledBack  bool
	commitErr   error
	rollbackErr error
}

func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return f.rollbackErr
}

func TestRunInTransaction(t *testing.T) {
	errWrite := errors.New("duplicate key")

	tests := []struct {
		name     string
		tx       *fakeTx
		fn       func(*fakeTx) error
		validate func(t *testing.T, tx *fakeTx, err error)
	}{
		{
			name: "Sucesso confirma a transação",
			tx:   &fakeTx{},
			fn:   func(*fakeTx) error { return nil },
			validate: func(t *testing.T, tx *fakeTx, err error) {
				assert.NoError(t, err)
				assert.True(t, tx.committed)
				assert.False(t, tx.rolledBack)
			},
		},
		{
			name: "Erro desfaz a transação",
			tx:   &fakeTx{},
			fn:   func(*fakeTx) error { return errWrite },
			validate: func(t *testing.T, tx *fakeTx, err error) {
				assert.ErrorIs(t, err, errWrite)
				assert.True(t, tx.rolledBack)
				assert.False(t, tx.committed)
			},
		},
		{
			name: "Falha no rollback preserva o erro original",
			tx:   &fakeTx{rollbackErr: errors.New("conn closed")},
			fn:   func(*fakeTx) error { return errWrite },
			validate: func(t *testing.T, tx *fakeTx, err error) {
				assert.ErrorIs(t, err, errWrite)
				assert.ErrorContains(t, err, "conn closed")
			},
		},
		{
			name: "Falha no commit",
			tx:   &fakeTx{commitErr: errors.New("serialization failure")},
			fn:   func(*fakeTx) error { return nil },
			validate: func(t *testing.T, tx *fakeTx, err error) {
				assert.ErrorContains(t, err, "erro ao confirmar transação: serialization failure")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runInTransaction(tt.tx, tt.fn)
			tt.validate(t, tt.tx, err)
		})
	}
}

func TestRunInTransaction_Panic(t *testing.T) {
	tx := &fakeTx{}

	assert.PanicsWithValue(t, "boom", func() {
		_ = runInTransaction(tx, func(*fakeTx) error { panic("boom") })
	})
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}
