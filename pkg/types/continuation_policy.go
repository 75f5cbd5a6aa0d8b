package types

import (
	"fmt"
	"strings"
)

// ContinuationPolicy 课堂模式下一题结束后是否继续的规则
type ContinuationPolicy int

const (
	// PolicyStrict 答对且未达到题量上限才继续；答错立即进入结束流程
	PolicyStrict ContinuationPolicy = iota
	// PolicyLenient 只看题量：未达到上限就继续，无论对错
	PolicyLenient
)

// String 返回规则名
func (p ContinuationPolicy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyLenient:
		return "lenient"
	default:
		return fmt.Sprintf("ContinuationPolicy(%d)", int(p))
	}
}

// ShouldContinue 判断课堂模式是否继续出题
//
// nextNumber 是已经递增后的题号，limit 是题量上限。
func (p ContinuationPolicy) ShouldContinue(answeredCorrect bool, nextNumber, limit int) bool {
	underLimit := nextNumber <= limit
	if p == PolicyLenient {
		return underLimit
	}
	return answeredCorrect && underLimit
}

// ParseContinuationPolicy 解析规则名（大小写不敏感）
func ParseContinuationPolicy(s string) (ContinuationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	}
	return PolicyStrict, fmt.Errorf("unknown continuation policy %q (want strict or lenient)", s)
}

// MarshalYAML 以名称形式写入 YAML
func (p ContinuationPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// UnmarshalYAML 从名称读取规则
func (p *ContinuationPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseContinuationPolicy(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
