// Package types 定义共享的基础类型
package types

import (
	"fmt"
	"strings"
)

// Lane 答案车道（从上到下有序，两端不循环）
type Lane int

const (
	LaneTop    Lane = iota // 上车道
	LaneMiddle             // 中车道
	LaneBottom             // 下车道
)

// LaneCount 车道数量（每道题固定三个选项）
const LaneCount = 3

// AllLanes 按碰撞检测优先级排列的车道列表
var AllLanes = [LaneCount]Lane{LaneTop, LaneMiddle, LaneBottom}

// String 返回车道名称
func (l Lane) String() string {
	switch l {
	case LaneTop:
		return "top"
	case LaneMiddle:
		return "middle"
	case LaneBottom:
		return "bottom"
	default:
		return fmt.Sprintf("lane(%d)", int(l))
	}
}

// Valid 检查车道值是否合法
func (l Lane) Valid() bool {
	return l >= LaneTop && l <= LaneBottom
}

// Up 返回上一条车道，已在最上方时保持不变
func (l Lane) Up() Lane {
	if l <= LaneTop {
		return LaneTop
	}
	return l - 1
}

// Down 返回下一条车道，已在最下方时保持不变
func (l Lane) Down() Lane {
	if l >= LaneBottom {
		return LaneBottom
	}
	return l + 1
}

// ParseLane 解析车道名称（大小写不敏感）
func ParseLane(s string) (Lane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return LaneTop, nil
	case "middle":
		return LaneMiddle, nil
	case "bottom":
		return LaneBottom, nil
	}
	return LaneMiddle, fmt.Errorf("unknown lane %q (want top, middle or bottom)", s)
}

// MarshalYAML 以名称形式写入 YAML
func (l Lane) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

// UnmarshalYAML 从名称读取车道
func (l *Lane) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseLane(name)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
