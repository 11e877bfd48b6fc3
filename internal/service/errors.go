package service

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pesquisa-fei/backend/pkg/errors"
)

// classify 将仓储层错误归入统一错误集合
//
//   - 已归类的领域错误原样返回（含模型钩子返回的 RuleViolation）
//   - 唯一键 / 外键冲突 → IntegrityError
//   - 其余 → StoreError
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case apperrors.IsNotFound(err), apperrors.IsInvalidInput(err), apperrors.IsRuleViolation(err),
		apperrors.IsIntegrity(err), isStoreFailure(err):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return &apperrors.IntegrityError{Cause: err}
	}
	return &apperrors.StoreError{Op: op, Cause: err}
}

// lookup 按主键查询的错误转换：记录不存在 → NotFound{entity, id}
func lookup(entity apperrors.Entity, id interface{}, op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(entity, id)
	}
	return classify(op, err)
}

// isStoreFailure 是否需要按错误级别记录日志
func isStoreFailure(err error) bool {
	var store *apperrors.StoreError
	return errors.As(err, &store)
}
