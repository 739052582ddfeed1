package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Параметры генерации
type Options struct {
	Customers       int
	Products        int
	Rules           int
	Months          int
	MultiItemShare  float64
	CandidatesPerID int
}

var (
	clusters = []string{"DIAMOND", "GOLD", "SILVER"}
	ufRegion = map[string]string{
		"MT": "Centro-Oeste", "GO": "Centro-Oeste", "MS": "Centro-Oeste",
		"PR": "Sul", "RS": "Sul", "SC": "Sul",
		"SP": "Sudeste", "MG": "Sudeste",
		"BA": "Nordeste", "MA": "Nordeste",
		"TO": "Norte",
	}
	productClasses = map[string][]string{
		"Sementes":        {"Semente de Soja", "Semente de Milho", "Semente de Algodão", "Semente de Trigo"},
		"Fertilizantes":   {"Adubo NPK 04-14-08", "Ureia", "Cloreto de Potássio", "Superfosfato Simples"},
		"Defensivos":      {"Fungicida", "Inseticida", "Herbicida", "Nematicida"},
		"Nutrição Foliar": {"Boro Foliar", "Manganês Quelatado", "Zinco Foliar"},
		"Inoculantes":     {"Inoculante Bradyrhizobium", "Azospirillum"},
	}
)

// Generator пишет пять входных таблиц дашборда
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
	opts  Options
}

// NewGenerator создает генератор; seed 0 дает случайное зерно
func NewGenerator(seed int64, now time.Time, opts Options) *Generator {
	return &Generator{faker: gofakeit.New(seed), now: now, opts: opts}
}

// Files имена файлов относительно каталога данных
var Files = struct {
	Customers, History, Recommendations, Products, Rules string
}{
	Customers:       "clientes_df.csv",
	History:         filepath.Join("bases", "cestas.csv"),
	Recommendations: "recomendacoes.csv",
	Products:        filepath.Join("bases", "produtos.csv"),
	Rules:           "regras_apriori.csv",
}

// Write генерирует данные и записывает CSV в dir
func (g *Generator) Write(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "bases"), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	products := g.products()
	userIDs := make([]string, g.opts.Customers)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("user_%d", i+1)
	}

	tables := []struct {
		path string
		rows [][]string
	}{
		{Files.Products, products},
		{Files.Customers, g.customers(userIDs)},
		{Files.History, g.history(userIDs)},
		{Files.Recommendations, g.recommendations(userIDs)},
		{Files.Rules, g.rules()},
	}

	for _, t := range tables {
		if err := writeCSV(filepath.Join(dir, t.path), t.rows); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) itemID() string {
	return fmt.Sprintf("item_%d", g.faker.Number(1, g.opts.Products))
}

func (g *Generator) products() [][]string {
	classes := make([]string, 0, len(productClasses))
	for class := range productClasses {
		classes = append(classes, class)
	}
	// Порядок ключей map не детерминирован
	sort.Strings(classes)

	rows := [][]string{{"item_id", "item_desc", "item_class"}}
	for i := 1; i <= g.opts.Products; i++ {
		class := g.faker.RandomString(classes)
		desc := fmt.Sprintf("%s %s", g.faker.RandomString(productClasses[class]), strings.ToUpper(g.faker.Lexify("???")))
		rows = append(rows, []string{fmt.Sprintf("item_%d", i), desc, class})
	}
	return rows
}

func (g *Generator) customers(userIDs []string) [][]string {
	ufs := make([]string, 0, len(ufRegion))
	for uf := range ufRegion {
		ufs = append(ufs, uf)
	}
	sort.Strings(ufs)

	rows := [][]string{{
		"user_id", "nome", "responsavel", "documento", "cidade", "uf", "regiao",
		"culturas", "telefone", "email", "cluster", "area_total",
	}}
	for _, id := range userIDs {
		uf := g.faker.RandomString(ufs)
		area := ""
		// Часть клиентов без площади, ее заполнит обогащение
		if g.faker.Float64Range(0, 1) > 0.2 {
			area = strconv.Itoa(g.faker.Number(100, 2000))
		}
		rows = append(rows, []string{
			id,
			"Fazenda " + g.faker.LastName(),
			g.faker.Name(),
			g.faker.Numerify("##.###.###/0001-##"),
			g.faker.City(),
			uf,
			ufRegion[uf],
			"",
			g.faker.Numerify("(##) 9####-####"),
			g.faker.Email(),
			g.faker.RandomString(clusters),
			area,
		})
	}
	return rows
}

func (g *Generator) history(userIDs []string) [][]string {
	rows := [][]string{{"user_id", "item_id", "price", "timestamp"}}
	start := g.now.AddDate(0, -g.opts.Months, 0)

	for _, id := range userIDs {
		n := g.faker.Number(3, 25)
		for i := 0; i < n; i++ {
			ts := g.faker.DateRange(start, g.now)
			price := strconv.FormatFloat(g.faker.Float64Range(50, 15000), 'f', 2, 64)
			// Изредка пустая цена или дата, как в реальных выгрузках
			switch g.faker.Number(1, 40) {
			case 1:
				price = ""
			case 2:
				rows = append(rows, []string{id, g.itemID(), price, ""})
				continue
			}
			rows = append(rows, []string{id, g.itemID(), price, ts.Format("2006-01-02 15:04:05")})
		}
	}
	return rows
}

func (g *Generator) recommendations(userIDs []string) [][]string {
	rows := [][]string{{"user_id", "rec_id"}}
	for _, id := range userIDs {
		for i := 0; i < g.opts.CandidatesPerID; i++ {
			rows = append(rows, []string{id, g.itemID()})
		}
	}
	return rows
}

// rules пишет таблицу в формате выгрузки pandas: безымянная колонка индекса и frozenset
func (g *Generator) rules() [][]string {
	rows := [][]string{{"", "antecedents", "consequents", "support", "confidence", "lift"}}
	for i := 0; i < g.opts.Rules; i++ {
		antecedents := g.frozenset(g.faker.Number(1, 2))
		consequentSize := 1
		if g.faker.Float64Range(0, 1) < g.opts.MultiItemShare {
			consequentSize = 2
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			antecedents,
			g.frozenset(consequentSize),
			strconv.FormatFloat(g.faker.Float64Range(0.01, 0.2), 'f', 4, 64),
			strconv.FormatFloat(g.faker.Float64Range(0.3, 0.95), 'f', 4, 64),
			strconv.FormatFloat(g.faker.Float64Range(1.1, 6.0), 'f', 4, 64),
		})
	}
	return rows
}

func (g *Generator) frozenset(size int) string {
	items := make([]string, size)
	for i := range items {
		items[i] = "'" + g.itemID() + "'"
	}
	return "frozenset({" + strings.Join(items, ", ") + "})"
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
