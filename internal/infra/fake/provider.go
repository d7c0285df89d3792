// Package fake implements service.FakeDataProvider with gofakeit.
package fake

import (
	"strings"
	"time"

	"bookseed/config"
	"bookseed/internal/domain/service"

	"github.com/brianvoe/gofakeit/v7"
)

// Provider is a seeded gofakeit source. It is not safe for concurrent use.
type Provider struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

var _ service.FakeDataProvider = (*Provider)(nil)

// NewProvider builds a provider from faker.seed. A zero seed is random.
func NewProvider(cfg *config.Config) service.FakeDataProvider {
	var seed uint64
	if cfg != nil && cfg.Faker != nil {
		seed = cfg.Faker.Seed
	}

	return NewSeeded(seed)
}

// NewSeeded returns a provider whose output is fixed by seed.
func NewSeeded(seed uint64) *Provider {
	return &Provider{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

func (p *Provider) Username() string {
	return p.faker.Username()
}

func (p *Provider) Email() string {
	return p.faker.Email()
}

func (p *Provider) FirstName() string {
	return p.faker.FirstName()
}

func (p *Provider) LastName() string {
	return p.faker.LastName()
}

func (p *Provider) StreetAddress() string {
	return p.faker.Street()
}

func (p *Provider) ZipCode() string {
	return p.faker.Zip()
}

func (p *Provider) Phone() string {
	return p.faker.Phone()
}

// Words returns n capitalised words, e.g. "Quiet Harbor Of Glass Lanterns".
func (p *Provider) Words(n int) string {
	words := make([]string, 0, n)
	for range n {
		word := p.faker.Word()
		if word == "" {
			continue
		}
		words = append(words, strings.ToUpper(word[:1])+word[1:])
	}

	return strings.Join(words, " ")
}

func (p *Provider) Genre() string {
	return p.faker.BookGenre()
}

// DateWithinYears returns a midnight UTC date between today minus years and today.
func (p *Provider) DateWithinYears(years int) time.Time {
	today := truncateDay(p.now())
	if years <= 0 {
		return today
	}

	start := today.AddDate(-years, 0, 0)
	days := int(today.Sub(start).Hours() / 24)

	return start.AddDate(0, 0, p.IntBetween(0, days))
}

// IntBetween returns a uniform integer in [lo, hi]. Swapped bounds are reordered.
func (p *Provider) IntBetween(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}

	return p.faker.IntRange(lo, hi)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
