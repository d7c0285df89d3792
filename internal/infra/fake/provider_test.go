package fake

import (
	"strings"
	"testing"
	"time"

	"bookseed/config"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeeded_IsDeterministic(t *testing.T) {
	t.Parallel()

	a := NewSeeded(7)
	b := NewSeeded(7)

	for range 5 {
		assert.Equal(t, a.Username(), b.Username())
		assert.Equal(t, a.FirstName(), b.FirstName())
		assert.Equal(t, a.IntBetween(1, 100), b.IntBetween(1, 100))
	}
}

func TestProvider_Email(t *testing.T) {
	t.Parallel()

	p := NewSeeded(11)
	validate := validator.New()

	for range 20 {
		require.NoError(t, validate.Var(p.Email(), "required,email"))
	}
}

func TestProvider_IntBetween(t *testing.T) {
	t.Parallel()

	p := NewSeeded(3)

	for range 200 {
		n := p.IntBetween(100, 1000)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 1000)
	}

	assert.Equal(t, 4, p.IntBetween(4, 4))

	n := p.IntBetween(9, 2)
	assert.GreaterOrEqual(t, n, 2)
	assert.LessOrEqual(t, n, 9)
}

func TestProvider_Words(t *testing.T) {
	t.Parallel()

	p := NewSeeded(5)
	title := p.Words(5)

	words := strings.Fields(title)
	assert.NotEmpty(t, words)
	assert.LessOrEqual(t, len(words), 5)
	for _, w := range words {
		assert.Equal(t, strings.ToUpper(w[:1]), w[:1])
	}
	assert.Empty(t, p.Words(0))
}

func TestProvider_DateWithinYears(t *testing.T) {
	t.Parallel()

	p := NewSeeded(9)
	fixed := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(-5, 0, 0)

	for range 100 {
		d := p.DateWithinYears(5)
		assert.False(t, d.Before(earliest), d)
		assert.False(t, d.After(today), d)
		assert.Zero(t, d.Hour())
	}

	assert.Equal(t, today, p.DateWithinYears(0))
}

func TestProvider_FieldsAreNonEmpty(t *testing.T) {
	t.Parallel()

	p := NewSeeded(13)
	for _, v := range []string{p.Username(), p.LastName(), p.StreetAddress(), p.ZipCode(), p.Phone(), p.Genre()} {
		assert.NotEmpty(t, v)
	}
}

func TestNewProvider_UsesConfiguredSeed(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Faker: &config.FakerConfig{Seed: 21}}

	a := NewProvider(cfg)
	b := NewSeeded(21)
	assert.Equal(t, b.Username(), a.Username())

	assert.NotNil(t, NewProvider(&config.Config{}))
}
