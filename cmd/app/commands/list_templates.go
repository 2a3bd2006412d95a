package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	templatesUseCase "github.com/allisson/ciphershield/internal/templates/usecase"
)

type templateSummary struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Mappings          int       `json:"mappings"`
	CustomRecognizers int       `json:"custom_recognizers"`
	CreatedAt         time.Time `json:"created_at"`
}

// RunListTemplates prints every stored template in text or JSON format.
// Mapping values are never printed; only their counts.
//
// Requirements: Database must be migrated and accessible.
func RunListTemplates(
	ctx context.Context,
	templateUseCase templatesUseCase.TemplateUseCase,
	logger *slog.Logger,
	w io.Writer,
	format string,
) error {
	templates, err := templateUseCase.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	summaries := make([]templateSummary, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, templateSummary{
			ID:                t.ID,
			Name:              t.Name,
			Mappings:          len(t.Mappings),
			CustomRecognizers: len(t.CustomRecognizers),
			CreatedAt:         t.CreatedAt.UTC(),
		})
	}

	if format == "json" {
		if err := outputTemplatesJSON(summaries, w); err != nil {
			return err
		}
	} else {
		outputTemplatesText(summaries, w)
	}

	logger.Debug("templates listed", slog.Int("count", len(summaries)))
	return nil
}

func outputTemplatesText(summaries []templateSummary, w io.Writer) {
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(w, "No templates found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tMAPPINGS\tRECOGNIZERS\tCREATED AT")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(
			tw,
			"%d\t%s\t%d\t%d\t%s\n",
			s.ID,
			s.Name,
			s.Mappings,
			s.CustomRecognizers,
			s.CreatedAt.Format(time.RFC3339),
		)
	}
	_ = tw.Flush()
}

func outputTemplatesJSON(summaries []templateSummary, w io.Writer) error {
	jsonBytes, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(jsonBytes))
	return nil
}
