package dashboard

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichCustomersFillsMissing(t *testing.T) {
	customers := []Customer{{UserID: "user_1", Nome: "Fazenda Boa Vista"}}

	enriched := EnrichCustomers(customers, &fixedRandom{numbers: []int{1500}})

	require.Len(t, enriched, 1)
	require.NotNil(t, enriched[0].AreaTotal)
	assert.Equal(t, 1500.0, *enriched[0].AreaTotal)
	assert.Equal(t, SoilTypes[0], enriched[0].TipoSolo)
	assert.Equal(t, CommonPests[0], enriched[0].PragaComum)
	assert.Equal(t, HarvestSeasons[0], enriched[0].SafraPrincipal)
	assert.Equal(t, Crops[0], enriched[0].Culturas)

	// Исходный срез не меняется
	assert.Nil(t, customers[0].AreaTotal)
}

func TestEnrichCustomersKeepsRealData(t *testing.T) {
	customers := []Customer{{
		UserID:         "user_2",
		AreaTotal:      floatPtr(320),
		TipoSolo:       "Gleissolo",
		PragaComum:     "Cigarrinha",
		SafraPrincipal: "Safrinha",
		Culturas:       "Milho",
	}}
	rnd := &fixedRandom{}

	enriched := EnrichCustomers(customers, rnd)

	assert.Equal(t, customers, enriched)
	assert.Zero(t, rnd.calls)
}

func TestEnrichCustomersIsIdempotent(t *testing.T) {
	customers := []Customer{{UserID: "user_1"}, {UserID: "user_2", TipoSolo: "Argissolo"}}

	first := EnrichCustomers(customers, gofakeit.New(7))
	second := EnrichCustomers(first, gofakeit.New(99))

	assert.Equal(t, first, second)
}

func TestEnrichCustomersAreaRange(t *testing.T) {
	customers := make([]Customer, 200)
	for i := range customers {
		customers[i].UserID = "user"
	}

	for _, c := range EnrichCustomers(customers, gofakeit.New(42)) {
		require.NotNil(t, c.AreaTotal)
		assert.GreaterOrEqual(t, *c.AreaTotal, float64(MinAreaTotal))
		assert.LessOrEqual(t, *c.AreaTotal, float64(MaxAreaTotal))
		assert.Contains(t, SoilTypes, c.TipoSolo)
	}
}
