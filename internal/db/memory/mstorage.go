package memory

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage примитивное потокобезопасное хранилище ключ/значение в памяти.
// Значения сериализуются в json. Каждая таблица приложения живет в своем
// экземпляре хранилища.
type MStorage struct {
	data map[string][]byte
	seq  uint
	m    sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

func (m *MStorage) IsExist(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()

	_, ok := m.data[key]
	return ok
}

// NextID возвращает следующий идентификатор. Суррогат автоинкремента БД.
func (m *MStorage) NextID() uint {
	m.m.Lock()
	defer m.m.Unlock()

	m.seq++
	return m.seq
}

type SetOptions struct {
	Overwrite bool
}

// WithOverwrite разрешает перезапись существующего ключа.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.Overwrite = true
	}
}

func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context error")
	}

	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}

// Set Сохраняет новую пару ключ/значение. Ключ обязан быть уникальным,
// иначе вернется ошибка ErrDuplicateKey (если не задана опция WithOverwrite).
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context error")
	}

	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; ok && !options.Overwrite {
		return ErrDuplicateKey
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}
	m.data[key] = bytes
	return nil
}

func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context error")
	}

	m.m.RLock()
	defer m.m.RUnlock()

	var result = make([]T, 0, len(m.data))

	for _, bytes := range m.data {
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			logrus.WithError(err).Warnf("failed to unmarshal json for object `%+v`", val)
			continue
		}
		result = append(result, val)
	}
	return result, nil
}

// FilterAll возвращает все значения для которых fn вернула true.
func FilterAll[T any](ctx context.Context, m *MStorage, fn func(val T) bool) ([]T, error) {
	all, err := GetAll[T](ctx, m)
	if err != nil {
		return nil, err
	}

	var result = make([]T, 0, len(all))
	for _, val := range all {
		if fn(val) {
			result = append(result, val)
		}
	}
	return result, nil
}
