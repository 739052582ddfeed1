package dashboard

import "time"

// Customer клиент (produtor rural) с агрономическими атрибутами
// AreaTotal, TipoSolo, PragaComum, SafraPrincipal опциональны в источнике
// и заполняются EnrichCustomers
type Customer struct {
	UserID         string   `json:"user_id"`
	Nome           string   `json:"nome"`
	Responsavel    string   `json:"responsavel"`
	Documento      string   `json:"documento"`
	Cidade         string   `json:"cidade"`
	UF             string   `json:"uf"`
	Regiao         string   `json:"regiao"`
	Culturas       string   `json:"culturas"`
	Telefone       string   `json:"telefone"`
	Email          string   `json:"email"`
	Cluster        string   `json:"cluster"`
	AreaTotal      *float64 `json:"area_total"`
	TipoSolo       string   `json:"tipo_solo"`
	PragaComum     string   `json:"praga_comum"`
	SafraPrincipal string   `json:"safra_principal"`
}

// Transaction строка истории покупок
// Valor и Timestamp равны nil, если значение в источнике не распознано
type Transaction struct {
	UserID    string     `json:"user_id"`
	ItemID    string     `json:"item_id"`
	Valor     *float64   `json:"valor"`
	Timestamp *time.Time `json:"timestamp"`
	Categoria string     `json:"categoria"`
	ItemDesc  string     `json:"item_desc"`
	Data      string     `json:"data,omitempty"`
}

// Product товар каталога
type Product struct {
	ItemID    string `json:"item_id"`
	ItemDesc  string `json:"item_desc"`
	ItemClass string `json:"item_class"`
}

// RecommendationCandidate кандидат рекомендации; порядок в таблице задает ранг
type RecommendationCandidate struct {
	UserID string `json:"user_id"`
	RecID  string `json:"rec_id"`
}

// AssociationRule правило ассоциации (результат Apriori)
// Consequent пуст, если извлечь единственный item_id не удалось
type AssociationRule struct {
	Antecedents string   `json:"antecedents"`
	Consequent  string   `json:"consequents"`
	Lift        *float64 `json:"lift"`
	Confidence  *float64 `json:"confidence"`
}

// Tables пять семантических таблиц, загруженных на сессию
type Tables struct {
	Customers  []Customer                `json:"-"`
	History    []Transaction             `json:"-"`
	Candidates []RecommendationCandidate `json:"-"`
	Products   []Product                 `json:"-"`
	Rules      []AssociationRule         `json:"-"`
	Report     LoadReport                `json:"report"`
}

// LoadReport сводка загрузки: деградации и отброшенные значения
type LoadReport struct {
	LoadedAt             time.Time `json:"loaded_at"`
	Source               string    `json:"source"`
	RulesAvailable       bool      `json:"rules_available"`
	Customers            int       `json:"customers"`
	Transactions         int       `json:"transactions"`
	Candidates           int       `json:"candidates"`
	Products             int       `json:"products"`
	Rules                int       `json:"rules"`
	MalformedConsequents int       `json:"malformed_consequents"`
	MultiItemConsequents int       `json:"multi_item_consequents"`
	UnparsedTimestamps   int       `json:"unparsed_timestamps"`
	UnparsedValues       int       `json:"unparsed_values"`
	UnparsedScores       int       `json:"unparsed_scores"`
	UnmatchedProducts    int       `json:"unmatched_products"`
	Notices              []string  `json:"notices"`
}

// Degraded сообщает, что загрузка прошла с деградацией
func (r LoadReport) Degraded() bool {
	return !r.RulesAvailable || len(r.Notices) > 0
}

// Recommendation итоговая рекомендация для клиента
type Recommendation struct {
	UserID          string      `json:"user_id"`
	RecID           string      `json:"rec_id"`
	ItemDesc        string      `json:"item_desc"`
	ItemClass       string      `json:"item_class"`
	Lift            float64     `json:"lift"`
	Confianca       float64     `json:"confianca"`
	Razao           string      `json:"razao"`
	Categoria       string      `json:"categoria"`
	LiftSource      ScoreSource `json:"lift_source"`
	ConfiancaSource ScoreSource `json:"confianca_source"`
	Antecedents     string      `json:"antecedents,omitempty"`
	Rank            int         `json:"rank"`
}

// Metrics коммерческие метрики клиента
type Metrics struct {
	TicketMedio  float64 `json:"ticket_medio"`
	Frequencia   int     `json:"frequencia"`
	ValorTotal   float64 `json:"valor_total"`
	CategoriaTop string  `json:"categoria_top"`
	UltimoMes    float64 `json:"ultimo_mes"`
}

// ABCEntry строка кривой ABC по категориям
type ABCEntry struct {
	Categoria  string  `json:"categoria"`
	Valor      float64 `json:"valor"`
	Percentual float64 `json:"percentual"`
	Curva      string  `json:"curva"`
}

// MonthlyTotal сумма покупок за месяц (метка data)
type MonthlyTotal struct {
	Data    string  `json:"data"`
	Valor   float64 `json:"valor"`
	Compras int     `json:"compras"`
}

// Dashboard полная сводка по клиенту за окно истории
type Dashboard struct {
	Customer        Customer         `json:"cliente"`
	Months          int              `json:"meses"`
	TopN            int              `json:"top_n"`
	History         []Transaction    `json:"historico"`
	Monthly         []MonthlyTotal   `json:"mensal"`
	Recommendations []Recommendation `json:"recomendacoes"`
	Metrics         Metrics          `json:"metricas"`
	ABC             []ABCEntry       `json:"curva_abc"`
	RulesAvailable  bool             `json:"rules_available"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
