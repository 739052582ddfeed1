package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrodashboard/internal/infrastructure/persistence"
)

func TestGeneratedDataLoads(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	gen := NewGenerator(42, now, Options{
		Customers:       10,
		Products:        20,
		Rules:           30,
		Months:          6,
		MultiItemShare:  0.5,
		CandidatesPerID: 4,
	})
	require.NoError(t, gen.Write(dir))

	source := persistence.NewFileSource(map[string]string{
		persistence.TableCustomers:       filepath.Join(dir, Files.Customers),
		persistence.TableHistory:         filepath.Join(dir, Files.History),
		persistence.TableRecommendations: filepath.Join(dir, Files.Recommendations),
		persistence.TableProducts:        filepath.Join(dir, Files.Products),
		persistence.TableRules:           filepath.Join(dir, Files.Rules),
	}, "utf-8")

	tables, err := persistence.NewTablesLoader(source, gofakeit.New(1)).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, tables.Customers, 10)
	assert.Len(t, tables.Products, 20)
	assert.Len(t, tables.Candidates, 40)
	assert.Len(t, tables.Rules, 30)
	assert.True(t, tables.Report.RulesAvailable)
	assert.Zero(t, tables.Report.MalformedConsequents)
	assert.Zero(t, tables.Report.UnmatchedProducts)

	for _, c := range tables.Customers {
		assert.NotNil(t, c.AreaTotal)
		assert.NotEmpty(t, c.Culturas)
		assert.Contains(t, clusters, c.Cluster)
	}
	for _, r := range tables.Rules {
		assert.True(t, strings.HasPrefix(r.Antecedents, "frozenset({"))
	}
}

func TestGeneratorIsDeterministicForSeed(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	opts := Options{Customers: 3, Products: 5, Rules: 4, Months: 3, CandidatesPerID: 2}

	a := NewGenerator(7, now, opts)
	b := NewGenerator(7, now, opts)

	assert.Equal(t, a.products(), b.products())
	assert.Equal(t, a.rules(), b.rules())
}
