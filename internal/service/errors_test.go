package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "pesquisa-fei/backend/pkg/errors"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify("op", nil))

	// 已分类的错误原样返回
	for _, err := range []error{
		apperrors.NotFound(apperrors.EntityProject, 1),
		apperrors.Invalid("tema", "vazio"),
		apperrors.Violation(apperrors.RuleSingleActiveStudent, "um aluno"),
		&apperrors.IntegrityError{Cause: gorm.ErrDuplicatedKey},
		&apperrors.StoreError{Op: "x", Cause: errors.New("down")},
	} {
		assert.Same(t, err, classify("op", err))
	}

	// 钩子中返回的校验错误经过包装后仍保持原类型
	wrapped := fmt.Errorf("hook: %w", apperrors.Invalid("mongo_id", "curto"))
	assert.True(t, apperrors.IsInvalidInput(classify("op", wrapped)))

	assert.True(t, apperrors.IsIntegrity(classify("op", gorm.ErrDuplicatedKey)))
	assert.True(t, apperrors.IsIntegrity(classify("op", gorm.ErrForeignKeyViolated)))

	var store *apperrors.StoreError
	assert.True(t, errors.As(classify("salvar", errors.New("conn reset")), &store))
	assert.Equal(t, "salvar", store.Op)
}

func TestLookup(t *testing.T) {
	err := lookup(apperrors.EntityStudent, int64(9), "buscar aluno", gorm.ErrRecordNotFound)
	assertNotFound(t, err, apperrors.EntityStudent)
	assert.True(t, apperrors.IsIntegrity(lookup(apperrors.EntityStudent, int64(9), "x", gorm.ErrForeignKeyViolated)))
}
