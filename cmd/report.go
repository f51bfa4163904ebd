package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jekabolt/affiliate-dashboard/internal/dto"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/jekabolt/affiliate-dashboard/internal/report"
	"github.com/jekabolt/affiliate-dashboard/internal/store"
)

var (
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard report of a publisher or the whole platform",
		RunE:  printDashboard,
	}

	reportPublisher int64
	reportStart     string
	reportEnd       string
	reportJSON      bool
	reportRecent    bool
)

func init() {
	reportCmd.Flags().Int64Var(&reportPublisher, "publisher", 0, "publisher id, platform-wide report when omitted")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "first day of the window (2006-01-02)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "last day of the window (2006-01-02)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the report as JSON")
	reportCmd.Flags().BoolVar(&reportRecent, "recent", false, "include 24h, 7d and 30d activity")
}

func printDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	s, err := store.New(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	engine, err := report.New(&cfg.Report, s.Reports(), nil)
	if err != nil {
		return err
	}

	q := entity.ReportQuery{StartDate: reportStart, EndDate: reportEnd, IncludeRecent: reportRecent}
	var rep *entity.Report
	if reportPublisher > 0 {
		rep, err = engine.Publisher(ctx, reportPublisher, q)
	} else {
		rep, err = engine.Platform(ctx, q)
	}
	if err != nil {
		return err
	}

	if reportJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ConvertEntityReportToDashboard(rep))
	}
	writeSummary(cmd.OutOrStdout(), rep)
	return nil
}

func pct(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", *p)
}

func money(p *message.Printer, d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return p.Sprintf("%.2f", f)
}

// writeSummary prints a human readable digest with locale aware number grouping.
func writeSummary(w io.Writer, r *entity.Report) {
	p := message.NewPrinter(language.English)

	scope := "platform"
	if !r.Scope.IsPlatform() {
		scope = fmt.Sprintf("publisher %d", r.Scope.PublisherID)
	}
	p.Fprintf(w, "Report for %s, %s to %s\n\n", scope,
		r.Period.Effective.From.Format("2006-01-02"),
		r.Period.Effective.To.AddDate(0, 0, -1).Format("2006-01-02"))

	t := r.Totals
	p.Fprintf(w, "%-22s %d\n", "Clicks", t.TotalClicks)
	p.Fprintf(w, "%-22s %d (raw %d, difference %d)\n", "Conversions", t.TotalConversions, t.RawTotalConversions, t.ConversionsDifference)
	p.Fprintf(w, "%-22s %s\n", "Earnings", money(p, t.TotalEarnings))
	p.Fprintf(w, "%-22s %s%%\n", "Avg commission cut", t.AvgCommissionCut.StringFixed(2))
	p.Fprintln(w)

	p.Fprintf(w, "%-22s %d unique, %d total\n", "Window clicks", t.NetUniqueClicks, t.NetClicks)
	p.Fprintf(w, "%-22s %d (raw %d)\n", "Window conversions", t.Conversions, t.RawConversions)
	p.Fprintf(w, "%-22s %s%%\n", "Conversion rate", t.ConversionRate.StringFixed(2))
	p.Fprintln(w)

	for _, m := range []struct {
		name  string
		stats entity.MonthStats
	}{{"This month", r.ThisMonth}, {"Previous month", r.PreviousMonth}} {
		p.Fprintf(w, "%-22s %d clicks, %d conversions, %s earned\n", m.name, m.stats.Clicks, m.stats.Conversions, money(p, m.stats.Earnings))
	}
	mom := r.MonthOverMonth
	p.Fprintf(w, "%-22s clicks %s, conversions %s, earnings %s\n", "Month over month", pct(mom.ClicksPct), pct(mom.ConversionsPct), pct(mom.EarningsPct))

	if len(r.TrafficSources) > 0 {
		sources := make([]string, 0, len(r.TrafficSources))
		for _, s := range r.TrafficSources {
			geo := s.Geo
			if geo == "" {
				geo = "unknown"
			}
			sources = append(sources, p.Sprintf("%s %d", geo, s.Clicks))
		}
		p.Fprintf(w, "%-22s %s\n", "Top traffic sources", strings.Join(sources, ", "))
	}

	if len(r.ConversionsByOffer) > 0 {
		p.Fprintf(w, "\nConversions by offer\n")
		for _, o := range r.ConversionsByOffer {
			p.Fprintf(w, "  %-20s %d (raw %d)\n", o.OfferName, o.Conversions, o.RawConversions)
		}
	}
}
