package services

import (
	"crypto/rand"
	mrand "math/rand/v2"
	"sync"

	"github.com/avolkov/linkstats/internal/models"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CodeGenerator генерирует короткие коды - равномерно распределенные строки
// над алфавитом [A-Za-z0-9]. Источник случайности передается снаружи, что
// позволяет подсовывать детерминированный сид в тестах.
type CodeGenerator struct {
	length int
	mu     sync.Mutex
	rnd    *mrand.Rand
}

// NewCodeGenerator создает генератор с ChaCha8-источником, засеянным из crypto/rand.
func NewCodeGenerator(length int) *CodeGenerator {
	var seed [32]byte
	_, _ = rand.Read(seed[:]) // по контракту crypto/rand.Read не возвращает ошибку
	return NewCodeGeneratorWithSource(mrand.NewChaCha8(seed), length)
}

func NewCodeGeneratorWithSource(src mrand.Source, length int) *CodeGenerator {
	if length <= 0 {
		length = models.ShortCodeLength
	}
	return &CodeGenerator{
		length: length,
		rnd:    mrand.New(src),
	}
}

// Generate возвращает новый случайный код. Потокобезопасен.
func (g *CodeGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, g.length)
	for i := range b {
		b[i] = codeCharset[g.rnd.IntN(len(codeCharset))]
	}
	return string(b)
}
