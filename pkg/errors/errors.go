package errors

import (
	"errors"
	"fmt"
)

// ── 实体类型 ──

// Entity 标识出错的实体种类，替代对底层错误消息的字符串匹配
type Entity string

const (
	EntityDepartment  Entity = "departamento"
	EntityCourse      Entity = "curso"
	EntityProfessor   Entity = "professor"
	EntityStudent     Entity = "aluno"
	EntityProject     Entity = "projeto"
	EntityLattes      Entity = "lattes"
	EntityParticipant Entity = "participante"
	EntityAdvisor     Entity = "orientador"
)

// Rule 业务规则标识
type Rule string

const (
	RuleAdvisorNotAssessor    Rule = "advisor_not_assessor"
	RuleSingleActiveStudent   Rule = "single_active_student"
	RuleSingleActiveAdvisor   Rule = "single_active_advisor"
	RuleSingleActiveAssessor  Rule = "single_active_assessor"
	RuleMultipleActiveMembers Rule = "multiple_active_participants"
)

// ── 错误变体 ──

// NotFoundError 按主键查询不到实体
type NotFoundError struct {
	Entity  Entity
	ID      string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s (ID %s) não encontrado.", capitalize(string(e.Entity)), e.ID)
}

// InvalidInputError 输入格式或取值不合法
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// RuleViolationError 违反业务规则
type RuleViolationError struct {
	Rule    Rule
	Message string
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

// IntegrityError 存储层唯一约束或外键约束冲突
type IntegrityError struct {
	Cause error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("violação de integridade: %v", e.Cause)
}

func (e *IntegrityError) Unwrap() error { return e.Cause }

// StoreError 其他存储层失败
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error { return e.Cause }

// ── 构造函数 ──

// NotFound 创建 NotFoundError
func NotFound(entity Entity, id interface{}) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

// Invalid 创建 InvalidInputError
func Invalid(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// Violation 创建 RuleViolationError
func Violation(rule Rule, message string) *RuleViolationError {
	return &RuleViolationError{Rule: rule, Message: message}
}

// ── 判定辅助 ──

// IsNotFound 判断是否为 NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsInvalidInput 判断是否为 InvalidInputError
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsRuleViolation 判断是否为 RuleViolationError
func IsRuleViolation(err error) bool {
	var target *RuleViolationError
	return errors.As(err, &target)
}

// IsIntegrity 判断是否为 IntegrityError
func IsIntegrity(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
