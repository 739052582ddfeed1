package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	dashboardapp "agrodashboard/internal/application/dashboard"
	"agrodashboard/internal/config"
	"agrodashboard/internal/container"
	dashboarddomain "agrodashboard/internal/domain/dashboard"
)

func main() {
	userID := flag.String("user", "", "user_id клиента")
	months := flag.Int("months", 0, "Окно истории в месяцах (0 = HISTORY_MONTHS)")
	topN := flag.Int("top", 0, "Число рекомендаций (0 = TOP_N)")
	xlsxPath := flag.String("xlsx", "", "Дополнительно сохранить сводку в XLSX")
	printJSON := flag.Bool("json", false, "Print raw JSON dashboard after the tables")
	flag.Parse()

	if *userID == "" {
		log.Fatal("flag -user is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to create container: %v", err)
	}
	if err := c.Initialize(); err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
	defer c.Shutdown(context.Background())

	ctx := context.Background()
	opts := dashboardapp.Options{Months: *months, TopN: *topN}
	d, err := c.DashboardUseCase.GetDashboard(ctx, *userID, opts)
	if err != nil {
		log.Fatalf("failed to build dashboard: %v", err)
	}

	renderDashboard(os.Stdout, d)

	if *xlsxPath != "" {
		f, err := os.Create(*xlsxPath)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *xlsxPath, err)
		}
		if err := c.DashboardUseCase.WriteExport(f, d); err != nil {
			f.Close()
			log.Fatalf("failed to export dashboard: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("failed to close %s: %v", *xlsxPath, err)
		}
		fmt.Printf("\nXLSX saved to %s\n", *xlsxPath)
	}

	if *printJSON {
		payload, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			log.Fatalf("failed to marshal dashboard: %v", err)
		}
		fmt.Println("\nJSON payload:")
		fmt.Println(string(payload))
	}
}

func renderDashboard(w io.Writer, d *dashboarddomain.Dashboard) {
	cust := d.Customer
	fmt.Fprintf(w, "\n--- %s (%s) ---\n", cust.Nome, cust.UserID)
	fmt.Fprintf(w, "Responsável: %s | %s/%s | Cluster: %s\n", cust.Responsavel, cust.Cidade, cust.UF, cust.Cluster)
	fmt.Fprintf(w, "Culturas: %s | Solo: %s | Praga: %s | Safra: %s | Área: %s ha\n",
		cust.Culturas, cust.TipoSolo, cust.PragaComum, cust.SafraPrincipal, formatOptional(cust.AreaTotal))
	fmt.Fprintf(w, "Janela: %d meses | Gerado em: %s\n", d.Months, d.GeneratedAt.Format(timeLayout))

	fmt.Fprintln(w, "\nMétricas:")
	metrics := tablewriter.NewWriter(w)
	metrics.SetHeader([]string{"Ticket médio", "Frequência", "Valor total", "Categoria top", "Último mês"})
	metrics.Append([]string{
		formatMoney(d.Metrics.TicketMedio),
		strconv.Itoa(d.Metrics.Frequencia),
		formatMoney(d.Metrics.ValorTotal),
		d.Metrics.CategoriaTop,
		formatMoney(d.Metrics.UltimoMes),
	})
	metrics.Render()

	fmt.Fprintln(w, "\nRecomendações:")
	if !d.RulesAvailable {
		fmt.Fprintln(w, "  (regras de associação indisponíveis, valores estimados)")
	}
	recs := tablewriter.NewWriter(w)
	recs.SetHeader([]string{"#", "Produto", "Categoria", "Lift", "Confiança", "Origem", "Razão"})
	for _, rec := range d.Recommendations {
		recs.Append([]string{
			strconv.Itoa(rec.Rank),
			rec.ItemDesc,
			rec.Categoria,
			fmt.Sprintf("%.2f", rec.Lift),
			fmt.Sprintf("%.0f%%", rec.Confianca*100),
			string(rec.LiftSource),
			rec.Razao,
		})
	}
	recs.Render()

	fmt.Fprintln(w, "\nCompras por mês:")
	monthly := tablewriter.NewWriter(w)
	monthly.SetHeader([]string{"Mês", "Compras", "Valor"})
	for _, m := range d.Monthly {
		monthly.Append([]string{m.Data, strconv.Itoa(m.Compras), formatMoney(m.Valor)})
	}
	monthly.Render()

	fmt.Fprintln(w, "\nCurva ABC:")
	abc := tablewriter.NewWriter(w)
	abc.SetHeader([]string{"Categoria", "Valor", "% acumulado", "Curva"})
	for _, e := range d.ABC {
		abc.Append([]string{e.Categoria, formatMoney(e.Valor), fmt.Sprintf("%.1f", e.Percentual), e.Curva})
	}
	abc.Render()
}

func formatMoney(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

const timeLayout = "2006-01-02 15:04:05"
