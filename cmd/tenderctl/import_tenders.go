package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/postgres"
)

// systemActor the identity bulk operations run as.
var systemActor = access.Actor{ID: "tenderctl", Role: entity.RoleAdmin}

func newImportTendersCmd() *cobra.Command {
	var encoding string
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import-tenders <file.csv>",
		Short: "Create tenders from a CSV export",
		Long: "Columns (header required, any order): title, ref_number, status, opening_date, closing_date, amendments.\n" +
			"Dates are YYYY-MM-DD or RFC 3339. Government exports are often Latin-1; pass --encoding latin1.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := readTenderCSV(f, encoding)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d tenders parsed\n", len(rows))
				return nil
			}

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := usecase.NewTenderUseCase(postgres.NewTenderRepository(pool))
			created := 0
			for i, in := range rows {
				if _, err := uc.Create(cmd.Context(), systemActor, in); err != nil {
					log.Error().Err(err).Int("row", i+2).Str("ref_number", in.RefNumber).Msg("skip tender")
					continue
				}
				created++
			}
			log.Info().Int("created", created).Int("rows", len(rows)).Msg("import finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", "utf8", "input encoding: utf8 | latin1")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate only")
	return cmd
}

// readTenderCSV parses the import file into create requests.
func readTenderCSV(r io.Reader, encoding string) ([]dto.CreateTenderRequest, error) {
	switch strings.ToLower(encoding) {
	case "", "utf8", "utf-8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"title", "status"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	get := func(rec []string, name string) string {
		if i, ok := col[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	var out []dto.CreateTenderRequest
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		in := dto.CreateTenderRequest{
			Title:      get(rec, "title"),
			RefNumber:  get(rec, "ref_number"),
			Status:     get(rec, "status"),
			Amendments: get(rec, "amendments"),
		}
		if in.Title == "" || in.Status == "" {
			return nil, fmt.Errorf("line %d: title and status are required", line)
		}
		if in.OpeningDate, err = parseDate(get(rec, "opening_date")); err != nil {
			return nil, fmt.Errorf("line %d: opening_date: %w", line, err)
		}
		if in.ClosingDate, err = parseDate(get(rec, "closing_date")); err != nil {
			return nil, fmt.Errorf("line %d: closing_date: %w", line, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognised date %q", s)
}
