package dashboard

// Диапазоны и списки значений-заполнителей для агрономических атрибутов
const (
	MinAreaTotal = 100
	MaxAreaTotal = 2000
)

var (
	SoilTypes      = []string{"Latossolo Vermelho", "Argissolo", "Neossolo Quartzarênico", "Nitossolo", "Cambissolo"}
	CommonPests    = []string{"Lagarta-do-cartucho", "Percevejo-marrom", "Mosca-branca", "Ferrugem asiática", "Bicudo-do-algodoeiro"}
	HarvestSeasons = []string{"Safra de verão", "Safrinha", "Safra de inverno"}
	Crops          = []string{"Soja", "Milho", "Algodão", "Café", "Cana-de-açúcar", "Trigo"}
)

// EnrichCustomers гарантирует наличие агрономических атрибутов у каждого клиента
// Присутствующие значения не меняются; отсутствующие заполняются случайными
// из документированных диапазонов. Повторный вызов ничего не меняет.
func EnrichCustomers(customers []Customer, rnd RandomSource) []Customer {
	enriched := make([]Customer, len(customers))
	for i, customer := range customers {
		if customer.AreaTotal == nil {
			area := float64(rnd.Number(MinAreaTotal, MaxAreaTotal))
			customer.AreaTotal = &area
		}
		if customer.TipoSolo == "" {
			customer.TipoSolo = rnd.RandomString(SoilTypes)
		}
		if customer.PragaComum == "" {
			customer.PragaComum = rnd.RandomString(CommonPests)
		}
		if customer.SafraPrincipal == "" {
			customer.SafraPrincipal = rnd.RandomString(HarvestSeasons)
		}
		if customer.Culturas == "" {
			customer.Culturas = rnd.RandomString(Crops)
		}
		enriched[i] = customer
	}
	return enriched
}
