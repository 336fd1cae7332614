package session

import (
	"context"

	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler/chrome"
)

// Manager 持有唯一的浏览器会话, 负责创建, 带重试的导航和失败后的替换
type Manager interface {
	// Create 返回当前会话, 没有时启动一个新的
	Create(ctx context.Context) (chrome.Session, error)
	Navigate(ctx context.Context, url string) *NavResult
	// Restarts 已消耗的重启次数
	Restarts() int
	// Close 释放当前会话, 可重复调用
	Close()
}

type NavStatus int

const (
	NavOK NavStatus = iota
	// NavRetry 本页失败, 会话已替换或仍可替换
	NavRetry
	// NavFatal 本页失败且无法再重启, 会话保留供后续页面使用
	NavFatal
)

func (s NavStatus) String() string {
	switch s {
	case NavOK:
		return "ok"
	case NavRetry:
		return "retry"
	case NavFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

type NavResult struct {
	Status NavStatus
	// Page 停留在已渲染页面上的会话, 仅在NavOK时有效
	Page     chrome.Session
	Attempts int
	Err      error
}
