package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrPropertyOutOfRange 物性表无法给出结果
	ErrPropertyOutOfRange = errors.New("property out of range")
	// ErrRootNotBracketed 网格搜索在整个范围内都没有越过阈值
	ErrRootNotBracketed = errors.New("root not bracketed")
	// ErrInvalidEfficiency 效率不在允许区间
	ErrInvalidEfficiency = errors.New("invalid efficiency")
	// ErrNotEvaluated 尚未完成一次循环计算
	ErrNotEvaluated = errors.New("cycle not evaluated")
)

// 失败阶段
const (
	StageExtraction = "extraction fraction"
	StageDiagram    = "diagram"
)

func pointStage(id PointID) string {
	return fmt.Sprintf("point %d", int(id))
}

// CycleError 一次循环计算的失败，Stage 标明失败的状态点或求解器
type CycleError struct {
	Stage string
	Err   error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle %s: %v", e.Stage, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}

// property 把物性表错误归入 ErrPropertyOutOfRange
func property(err error) error {
	if err == nil || errors.Is(err, ErrPropertyOutOfRange) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPropertyOutOfRange, err)
}
