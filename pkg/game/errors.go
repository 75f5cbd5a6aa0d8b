package game

import "errors"

// 会话核心的错误类型
//
// 所有错误都在本地记录日志并中止当前操作，不会导致进程退出，也不会自动重试。
// 调用方使用 errors.Is 判断类型。
var (
	// ErrMissingDependency 缺少必需的呈现层依赖，无法开局
	ErrMissingDependency = errors.New("missing dependency")
	// ErrData 题库数据缺失或无法解析
	ErrData = errors.New("question data error")
	// ErrEmptyPool 当前难度下没有题目
	ErrEmptyPool = errors.New("question pool is empty")
	// ErrInvalidQuestion 题目结构不合法（选项数量或正确答案数量不对）
	ErrInvalidQuestion = errors.New("invalid question")
)
