package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// ID 请求体中的实体主键
//
// 同时接受 JSON 数字（10）与数字字符串（"10"），与响应中字符串形式的 ID 对称。
type ID int64

// UnmarshalJSON 解析数字或带引号的数字
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("ID inválido: %s", data)
	}
	*id = ID(n)
	return nil
}

// Int64 转换为仓储层使用的 int64
func (id ID) Int64() int64 { return int64(id) }

// Int64Ptr 可选 ID 转换；nil 保持为 nil
func (id *ID) Int64Ptr() *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}
