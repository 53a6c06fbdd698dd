package cache

import (
	"context"
	"sync"
	"time"
)

var _ Store = &StoreMock{}

type StoreMock struct {
	GetFunc           func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc           func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc        func(ctx context.Context, keys ...string) error
	TagFunc           func(ctx context.Context, tag string, key string) error
	InvalidateTagFunc func(ctx context.Context, tag string) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Set []struct {
			Ctx   context.Context
			Key   string
			Value []byte
			TTL   time.Duration
		}
		Delete []struct {
			Ctx  context.Context
			Keys []string
		}
		Tag []struct {
			Ctx context.Context
			Tag string
			Key string
		}
		InvalidateTag []struct {
			Ctx context.Context
			Tag string
		}
	}
	lockGet           sync.RWMutex
	lockSet           sync.RWMutex
	lockDelete        sync.RWMutex
	lockTag           sync.RWMutex
	lockInvalidateTag sync.RWMutex
}

func (mock *StoreMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if mock.GetFunc == nil {
		panic("StoreMock.GetFunc: method is nil but Store.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *StoreMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *StoreMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if mock.SetFunc == nil {
		panic("StoreMock.SetFunc: method is nil but Store.Set was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value []byte
		TTL   time.Duration
	}{Ctx: ctx, Key: key, Value: value, TTL: ttl}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, value, ttl)
}

func (mock *StoreMock) SetCalls() []struct {
	Ctx   context.Context
	Key   string
	Value []byte
	TTL   time.Duration
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *StoreMock) Delete(ctx context.Context, keys ...string) error {
	if mock.DeleteFunc == nil {
		panic("StoreMock.DeleteFunc: method is nil but Store.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Keys []string
	}{Ctx: ctx, Keys: keys}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, keys...)
}

func (mock *StoreMock) DeleteCalls() []struct {
	Ctx  context.Context
	Keys []string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *StoreMock) Tag(ctx context.Context, tag string, key string) error {
	if mock.TagFunc == nil {
		panic("StoreMock.TagFunc: method is nil but Store.Tag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tag string
		Key string
	}{Ctx: ctx, Tag: tag, Key: key}
	mock.lockTag.Lock()
	mock.calls.Tag = append(mock.calls.Tag, callInfo)
	mock.lockTag.Unlock()
	return mock.TagFunc(ctx, tag, key)
}

func (mock *StoreMock) TagCalls() []struct {
	Ctx context.Context
	Tag string
	Key string
} {
	mock.lockTag.RLock()
	calls := mock.calls.Tag
	mock.lockTag.RUnlock()
	return calls
}

func (mock *StoreMock) InvalidateTag(ctx context.Context, tag string) error {
	if mock.InvalidateTagFunc == nil {
		panic("StoreMock.InvalidateTagFunc: method is nil but Store.InvalidateTag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tag string
	}{Ctx: ctx, Tag: tag}
	mock.lockInvalidateTag.Lock()
	mock.calls.InvalidateTag = append(mock.calls.InvalidateTag, callInfo)
	mock.lockInvalidateTag.Unlock()
	return mock.InvalidateTagFunc(ctx, tag)
}

func (mock *StoreMock) InvalidateTagCalls() []struct {
	Ctx context.Context
	Tag string
} {
	mock.lockInvalidateTag.RLock()
	calls := mock.calls.InvalidateTag
	mock.lockInvalidateTag.RUnlock()
	return calls
}
