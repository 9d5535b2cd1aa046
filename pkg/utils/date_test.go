package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("vazio retorna nil sem erro", func(t *testing.T) {
		date, err := ParseDate("")
		assert.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("data válida", func(t *testing.T) {
		date, err := ParseDate("2024-06-10")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("formato inválido", func(t *testing.T) {
		date, err := ParseDate("10/06/2024")
		assert.Error(t, err)
		assert.Nil(t, date)
	})
}

func TestResolveDay(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	t.Run("data válida é usada", func(t *testing.T) {
		day := ResolveDay("2024-01-15", now)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), day)
	})

	t.Run("vazio cai para hoje", func(t *testing.T) {
		assert.Equal(t, now, ResolveDay("", now))
	})

	t.Run("inválido cai para hoje", func(t *testing.T) {
		assert.Equal(t, now, ResolveDay("15-01-2024", now))
	})
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	t.Run("mês válido vira intervalo semiaberto", func(t *testing.T) {
		start, end := ResolveMonth("2024-03", now)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("dezembro avança para janeiro do ano seguinte", func(t *testing.T) {
		start, end := ResolveMonth("2024-12", now)
		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("vazio cai para o mês atual", func(t *testing.T) {
		start, end := ResolveMonth("", now)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("inválido cai para o mês atual", func(t *testing.T) {
		start, _ := ResolveMonth("junho", now)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
	})
}
