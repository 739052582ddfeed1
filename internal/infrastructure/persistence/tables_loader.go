package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"agrodashboard/importer"
	"agrodashboard/internal/domain/dashboard"
)

// TablesLoader загружает пять таблиц дашборда и приводит их к доменным типам
type TablesLoader struct {
	source RawSource
	rnd    dashboard.RandomSource
	now    func() time.Time
	logger *slog.Logger
}

// NewTablesLoader создает загрузчик таблиц; rnd используется для обогащения клиентов
func NewTablesLoader(source RawSource, rnd dashboard.RandomSource) *TablesLoader {
	return &TablesLoader{
		source: source,
		rnd:    rnd,
		now:    time.Now,
		logger: slog.Default().With("component", "tables_loader"),
	}
}

// Load читает все таблицы. Отсутствие таблицы правил не является ошибкой:
// правила остаются пустыми, а отчет помечается как деградированный.
func (l *TablesLoader) Load(ctx context.Context) (*dashboard.Tables, error) {
	start := time.Now()
	tables := &dashboard.Tables{
		Report: dashboard.LoadReport{
			Source:         l.source.Describe(),
			RulesAvailable: true,
		},
	}
	report := &tables.Report

	customersRaw, err := l.read(ctx, TableCustomers, "user_id")
	if err != nil {
		return nil, err
	}
	productsRaw, err := l.read(ctx, TableProducts, "item_id")
	if err != nil {
		return nil, err
	}
	historyRaw, err := l.read(ctx, TableHistory, "user_id", "item_id")
	if err != nil {
		return nil, err
	}
	candidatesRaw, err := l.read(ctx, TableRecommendations, "user_id", "rec_id")
	if err != nil {
		return nil, err
	}

	tables.Customers = dashboard.EnrichCustomers(parseCustomers(customersRaw), l.rnd)
	tables.Products = parseProducts(productsRaw)
	tables.History = parseHistory(historyRaw, tables.Products, report)
	tables.Candidates = parseCandidates(candidatesRaw)

	rulesRaw, err := l.read(ctx, TableRules, "antecedents", "consequents")
	switch {
	case errors.Is(err, importer.ErrTableNotFound):
		report.RulesAvailable = false
		report.Notices = append(report.Notices, "association rules not found, recommendations use fallback scores")
		tables.Rules = []dashboard.AssociationRule{}
		l.logger.Warn("Association rules not found, continuing without rules",
			"error", err,
		)
	case err != nil:
		return nil, err
	default:
		tables.Rules = parseRules(rulesRaw, report)
	}

	if n := report.MultiItemConsequents + report.MalformedConsequents; n > 0 {
		l.logger.Warn("Rules with unusable consequents ignored",
			"multi_item", report.MultiItemConsequents,
			"malformed", report.MalformedConsequents,
		)
	}

	report.LoadedAt = l.now()
	report.Customers = len(tables.Customers)
	report.Transactions = len(tables.History)
	report.Candidates = len(tables.Candidates)
	report.Products = len(tables.Products)
	report.Rules = len(tables.Rules)

	l.logger.Info("Dashboard tables loaded",
		"source", report.Source,
		"customers", report.Customers,
		"transactions", report.Transactions,
		"candidates", report.Candidates,
		"products", report.Products,
		"rules", report.Rules,
		"rules_available", report.RulesAvailable,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return tables, nil
}

func (l *TablesLoader) read(ctx context.Context, name string, required ...string) (*importer.Table, error) {
	table, err := l.source.ReadTable(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", name, err)
	}
	if err := table.RequireColumns(required...); err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", name, err)
	}
	return table, nil
}

func parseCustomers(t *importer.Table) []dashboard.Customer {
	customers := make([]dashboard.Customer, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		c := dashboard.Customer{
			UserID:         t.Value(i, "user_id"),
			Nome:           t.Value(i, "nome"),
			Responsavel:    t.Value(i, "responsavel"),
			Documento:      t.Value(i, "documento"),
			Cidade:         t.Value(i, "cidade"),
			UF:             t.Value(i, "uf"),
			Regiao:         t.Value(i, "regiao"),
			Culturas:       t.Value(i, "culturas"),
			Telefone:       t.Value(i, "telefone"),
			Email:          t.Value(i, "email"),
			Cluster:        t.Value(i, "cluster"),
			TipoSolo:       t.Value(i, "tipo_solo"),
			PragaComum:     t.Value(i, "praga_comum"),
			SafraPrincipal: t.Value(i, "safra_principal"),
		}
		if v, ok := importer.ParseFloat(t.Value(i, "area_total")); ok {
			c.AreaTotal = &v
		}
		customers = append(customers, c)
	}
	return customers
}

func parseProducts(t *importer.Table) []dashboard.Product {
	products := make([]dashboard.Product, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		products = append(products, dashboard.Product{
			ItemID:    t.Value(i, "item_id"),
			ItemDesc:  t.Value(i, "item_desc"),
			ItemClass: t.Value(i, "item_class"),
		})
	}
	return products
}

// parseHistory переименовывает price в valor и присоединяет категорию и описание товара
func parseHistory(t *importer.Table, products []dashboard.Product, report *dashboard.LoadReport) []dashboard.Transaction {
	catalog := make(map[string]dashboard.Product, len(products))
	for _, p := range products {
		if _, exists := catalog[p.ItemID]; !exists {
			catalog[p.ItemID] = p
		}
	}

	history := make([]dashboard.Transaction, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		tx := dashboard.Transaction{
			UserID: t.Value(i, "user_id"),
			ItemID: t.Value(i, "item_id"),
		}

		if v, ok := importer.ParseFloat(t.Value(i, "price")); ok {
			tx.Valor = &v
		} else {
			report.UnparsedValues++
		}

		if ts, ok := importer.ParseTimestamp(t.Value(i, "timestamp")); ok {
			tx.Timestamp = &ts
		} else {
			report.UnparsedTimestamps++
		}

		if p, ok := catalog[tx.ItemID]; ok {
			tx.Categoria = p.ItemClass
			tx.ItemDesc = p.ItemDesc
		} else {
			report.UnmatchedProducts++
		}

		history = append(history, tx)
	}
	return history
}

func parseCandidates(t *importer.Table) []dashboard.RecommendationCandidate {
	candidates := make([]dashboard.RecommendationCandidate, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		candidates = append(candidates, dashboard.RecommendationCandidate{
			UserID: t.Value(i, "user_id"),
			RecID:  t.Value(i, "rec_id"),
		})
	}
	return candidates
}

// parseRules извлекает consequent и приводит lift/confidence к числам.
// Неразобранные значения становятся отсутствующими.
func parseRules(t *importer.Table, report *dashboard.LoadReport) []dashboard.AssociationRule {
	rules := make([]dashboard.AssociationRule, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rule := dashboard.AssociationRule{
			Antecedents: t.Value(i, "antecedents"),
		}

		consequent, err := importer.ExtractConsequent(t.Value(i, "consequents"))
		switch {
		case errors.Is(err, importer.ErrMultiItemConsequent):
			report.MultiItemConsequents++
		case err != nil:
			report.MalformedConsequents++
		default:
			rule.Consequent = consequent
		}

		rule.Lift = parseScore(t.Value(i, "lift"), report)
		rule.Confidence = parseScore(t.Value(i, "confidence"), report)

		rules = append(rules, rule)
	}
	return rules
}

func parseScore(raw string, report *dashboard.LoadReport) *float64 {
	if raw == "" {
		return nil
	}
	v, ok := importer.ParseFloat(raw)
	if !ok {
		report.UnparsedScores++
		return nil
	}
	return &v
}
